package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"rosegold_back_end/internal/models"
)

//go:embed seed.yaml
var seedYAML []byte

// SeedProducts decodes the embedded catalog seed.
func SeedProducts() ([]models.Product, error) {
	return ParseSeed(seedYAML)
}

// ParseSeed decodes a YAML product list and checks that ids are unique and
// positive and that every collection is known.
func ParseSeed(data []byte) ([]models.Product, error) {
	var products []models.Product
	if err := yaml.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to decode catalog seed: %w", err)
	}

	seen := make(map[int]bool, len(products))
	for i, p := range products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("seed entry %d: id must be positive, got %d", i, p.ID)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("seed entry %d: duplicate id %d", i, p.ID)
		}
		seen[p.ID] = true
		if !p.Collection.Valid() {
			return nil, fmt.Errorf("seed entry %d: unknown collection %q", i, p.Collection)
		}
		if p.Images == nil {
			products[i].Images = []string{}
		}
	}
	return products, nil
}
