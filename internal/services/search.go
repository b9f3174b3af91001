package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"sync"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"rosegold_back_end/internal/catalog"
	"rosegold_back_end/internal/models"
)

const indexQueueSize = 64

// ProductIndex mirrors the catalog into an Elasticsearch index for full-text
// search. The catalog store stays the source of truth: searches return ids
// which the caller resolves against the store.
type ProductIndex struct {
	client *elasticsearch.Client
	index  string
}

func NewProductIndex(client *elasticsearch.Client, index string) *ProductIndex {
	return &ProductIndex{client: client, index: index}
}

// Sync bulk-indexes products, replacing documents with the same id.
func (x *ProductIndex) Sync(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}

	var body bytes.Buffer
	enc := json.NewEncoder(&body)
	for _, p := range products {
		meta := map[string]any{"index": map[string]any{"_index": x.index, "_id": strconv.Itoa(p.ID)}}
		if err := enc.Encode(meta); err != nil {
			return err
		}
		if err := enc.Encode(p); err != nil {
			return err
		}
	}

	res, err := esapi.BulkRequest{Body: &body, Refresh: "true"}.Do(ctx, x.client)
	if err != nil {
		return fmt.Errorf("bulk index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("bulk index: %s", res.String())
	}

	var result struct {
		Errors bool `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return fmt.Errorf("bulk index response: %w", err)
	}
	if result.Errors {
		return errors.New("bulk index: some documents were rejected")
	}

	log.Printf("✅ %d products indexed in Elasticsearch", len(products))
	return nil
}

func (x *ProductIndex) Index(ctx context.Context, p models.Product) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}

	res, err := esapi.IndexRequest{
		Index:      x.index,
		DocumentID: strconv.Itoa(p.ID),
		Body:       bytes.NewReader(data),
		Refresh:    "true",
	}.Do(ctx, x.client)
	if err != nil {
		return fmt.Errorf("index product %d: %w", p.ID, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index product %d: %s", p.ID, res.String())
	}
	return nil
}

// Delete removes the document. A missing document is not an error.
func (x *ProductIndex) Delete(ctx context.Context, id int) error {
	res, err := esapi.DeleteRequest{
		Index:      x.index,
		DocumentID: strconv.Itoa(id),
		Refresh:    "true",
	}.Do(ctx, x.client)
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete product %d: %s", id, res.String())
	}
	return nil
}

// Search runs a fuzzy multi_match over the text fields and returns the ids of
// the hits in relevance order.
func (x *ProductIndex) Search(ctx context.Context, query string) ([]int, error) {
	var buf bytes.Buffer
	q := map[string]any{
		"size":    100,
		"_source": []string{"id"},
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"name^3", "category^2", "style^2", "description"},
				"fuzziness": "AUTO",
			},
		},
	}
	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("encode search: %w", err)
	}

	res, err := esapi.SearchRequest{
		Index: []string{x.index},
		Body:  &buf,
	}.Do(ctx, x.client)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		raw, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("search: %s: %s", res.Status(), raw)
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source struct {
					ID int `json:"id"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("decode search: %w", err)
	}

	ids := make([]int, 0, len(r.Hits.Hits))
	for _, hit := range r.Hits.Hits {
		ids = append(ids, hit.Source.ID)
	}
	return ids, nil
}

// Follow keeps the index in step with store. Changes are applied in order by
// a single goroutine; the returned function stops it.
func (x *ProductIndex) Follow(store *catalog.Store) (stop func()) {
	changes := make(chan catalog.Change, indexQueueSize)
	done := make(chan struct{})

	var mu sync.Mutex
	closed := false
	unsubscribe := store.Subscribe(func(c catalog.Change) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case changes <- c:
		default:
			log.Printf("⚠️ Index queue full, dropped %s of product %d", c.Kind, c.Product.ID)
		}
	})

	go func() {
		defer close(done)
		for c := range changes {
			if err := x.apply(context.Background(), c); err != nil {
				log.Printf("❌ Elasticsearch sync: %v", err)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			unsubscribe()
			mu.Lock()
			closed = true
			close(changes)
			mu.Unlock()
			<-done
		})
	}
}

func (x *ProductIndex) apply(ctx context.Context, c catalog.Change) error {
	switch c.Kind {
	case catalog.Created, catalog.Updated:
		return x.Index(ctx, c.Product)
	case catalog.Deleted:
		return x.Delete(ctx, c.Product.ID)
	default:
		return fmt.Errorf("unknown change %q", c.Kind)
	}
}
