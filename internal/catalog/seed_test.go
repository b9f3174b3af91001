package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedProducts(t *testing.T) {
	products, err := SeedProducts()
	require.NoError(t, err)
	require.Len(t, products, 19)

	first := products[0]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "Ethereal Rose Gold Ring", first.Name)
	assert.Equal(t, 4599, first.Price)
	assert.True(t, first.IsBestSeller)
	assert.NotNil(t, first.Images)
	assert.Equal(t, []string{first.Image}, first.Gallery())

	for _, p := range products {
		assert.Equal(t, p.StockCount > 0, p.InStock, "product %d stock flag", p.ID)
	}

	s := NewStore(products)
	assert.Len(t, s.ListByCollection("men"), 3)
	assert.Equal(t, 20, s.Create(draft("next", 1)).ID)
}

func TestParseSeed_Rejects(t *testing.T) {
	tests := map[string]string{
		"duplicate id":       "- {id: 1, collection: women}\n- {id: 1, collection: men}\n",
		"non-positive id":    "- {id: 0, collection: women}\n",
		"unknown collection": "- {id: 1, collection: pets}\n",
		"not a list":         "id: 1\n",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSeed([]byte(doc))
			assert.Error(t, err)
		})
	}
}
