package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"rosegold_back_end/internal/models"
)

// ImageSigner turns object-key image references into presigned MinIO URLs.
// Absolute URLs and site-relative paths are returned unchanged.
type ImageSigner struct {
	client *minio.Client
	bucket string
	ttl    time.Duration
}

func NewImageSigner(client *minio.Client, bucket string, ttl time.Duration) *ImageSigner {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ImageSigner{client: client, bucket: bucket, ttl: ttl}
}

// IsObjectKey reports whether ref names an object in the bucket rather than
// an URL the browser can load directly.
func IsObjectKey(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "/") || strings.HasPrefix(ref, "data:") {
		return false
	}
	u, err := url.Parse(ref)
	return err != nil || u.Scheme == ""
}

func (s *ImageSigner) Sign(ctx context.Context, ref string) (string, error) {
	if !IsObjectKey(ref) {
		return ref, nil
	}
	signed, err := s.client.PresignedGetObject(ctx, s.bucket, strings.TrimPrefix(ref, s.bucket+"/"), s.ttl, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", ref, err)
	}
	return signed.String(), nil
}

// Product returns p with its image references signed. A reference that
// cannot be signed is left as stored.
func (s *ImageSigner) Product(ctx context.Context, p models.Product) models.Product {
	p.Image = s.signOrKeep(ctx, p.Image)
	if len(p.Images) > 0 {
		images := make([]string, len(p.Images))
		for i, ref := range p.Images {
			images[i] = s.signOrKeep(ctx, ref)
		}
		p.Images = images
	}
	return p
}

// Upload stores an image under products/<id>/ and returns its object key.
func (s *ImageSigner) Upload(ctx context.Context, productID int, filename string, r io.Reader, size int64, contentType string) (string, error) {
	key := fmt.Sprintf("products/%d/%s%s", productID, uuid.NewString(), strings.ToLower(path.Ext(filename)))
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	log.Printf("🖼️ Image uploaded: %s", key)
	return key, nil
}

func (s *ImageSigner) signOrKeep(ctx context.Context, ref string) string {
	signed, err := s.Sign(ctx, ref)
	if err != nil {
		log.Printf("⚠️ %v", err)
		return ref
	}
	return signed
}
