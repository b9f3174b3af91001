package models

// Collection is the top-level catalog partition.
type Collection string

const (
	CollectionWomen  Collection = "women"
	CollectionMen    Collection = "men"
	CollectionKids   Collection = "kids"
	CollectionUnisex Collection = "unisex"
)

// Collections lists the partitions in display order.
var Collections = []Collection{CollectionWomen, CollectionMen, CollectionKids, CollectionUnisex}

// Valid reports whether c is one of the known collections.
func (c Collection) Valid() bool {
	for _, known := range Collections {
		if c == known {
			return true
		}
	}
	return false
}

// Product is a catalog entry. Prices are whole rupees.
type Product struct {
	ID            int        `json:"id" yaml:"id"`
	Name          string     `json:"name" yaml:"name"`
	Price         int        `json:"price" yaml:"price"`
	OriginalPrice *int       `json:"originalPrice,omitempty" yaml:"originalPrice,omitempty"`
	Image         string     `json:"image" yaml:"image"`
	Images        []string   `json:"images" yaml:"images"`
	Rating        float64    `json:"rating" yaml:"rating"`
	Reviews       int        `json:"reviews" yaml:"reviews"`
	Category      string     `json:"category" yaml:"category"`
	Style         string     `json:"style" yaml:"style"`
	Collection    Collection `json:"collection" yaml:"collection"`
	Description   string     `json:"description" yaml:"description"`
	IsOnSale      bool       `json:"isOnSale" yaml:"isOnSale"`
	IsBestSeller  bool       `json:"isBestSeller" yaml:"isBestSeller"`
	InStock       bool       `json:"inStock" yaml:"inStock"`
	StockCount    int        `json:"stockCount" yaml:"stockCount"`
}

// Clone returns a copy of p that shares no slice or pointer with it.
func (p Product) Clone() Product {
	if p.OriginalPrice != nil {
		v := *p.OriginalPrice
		p.OriginalPrice = &v
	}
	if p.Images != nil {
		p.Images = append([]string{}, p.Images...)
	}
	return p
}

// Gallery returns the additional images, or the primary image when there are none.
func (p Product) Gallery() []string {
	if len(p.Images) == 0 {
		return []string{p.Image}
	}
	return p.Images
}

// Discounted reports whether an original price is shown struck through.
func (p Product) Discounted() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}

// ProductDraft is what the admin form submits: a product without the
// store-assigned identifier, rating and review count.
type ProductDraft struct {
	Name          string     `json:"name" binding:"required"`
	Price         int        `json:"price" binding:"required,gt=0"`
	OriginalPrice *int       `json:"originalPrice,omitempty"`
	Image         string     `json:"image"`
	Images        []string   `json:"images"`
	Category      string     `json:"category"`
	Style         string     `json:"style"`
	Collection    Collection `json:"collection"`
	Description   string     `json:"description"`
	IsOnSale      bool       `json:"isOnSale"`
	IsBestSeller  bool       `json:"isBestSeller"`
	InStock       bool       `json:"inStock"`
	StockCount    int        `json:"stockCount" binding:"gte=0"`
}

// ProductPatch is a partial update. Nil fields are left untouched.
type ProductPatch struct {
	Name          *string     `json:"name,omitempty"`
	Price         *int        `json:"price,omitempty"`
	OriginalPrice *int        `json:"originalPrice,omitempty"`
	Image         *string     `json:"image,omitempty"`
	Images        *[]string   `json:"images,omitempty"`
	Rating        *float64    `json:"rating,omitempty"`
	Reviews       *int        `json:"reviews,omitempty"`
	Category      *string     `json:"category,omitempty"`
	Style         *string     `json:"style,omitempty"`
	Collection    *Collection `json:"collection,omitempty"`
	Description   *string     `json:"description,omitempty"`
	IsOnSale      *bool       `json:"isOnSale,omitempty"`
	IsBestSeller  *bool       `json:"isBestSeller,omitempty"`
	InStock       *bool       `json:"inStock,omitempty"`
	StockCount    *int        `json:"stockCount,omitempty"`
}

// Apply returns p with every non-nil field of the patch overwritten.
func (patch ProductPatch) Apply(p Product) Product {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.OriginalPrice != nil {
		v := *patch.OriginalPrice
		p.OriginalPrice = &v
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Images != nil {
		p.Images = append([]string(nil), (*patch.Images)...)
	}
	if patch.Rating != nil {
		p.Rating = *patch.Rating
	}
	if patch.Reviews != nil {
		p.Reviews = *patch.Reviews
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Style != nil {
		p.Style = *patch.Style
	}
	if patch.Collection != nil {
		p.Collection = *patch.Collection
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.IsOnSale != nil {
		p.IsOnSale = *patch.IsOnSale
	}
	if patch.IsBestSeller != nil {
		p.IsBestSeller = *patch.IsBestSeller
	}
	if patch.InStock != nil {
		p.InStock = *patch.InStock
	}
	if patch.StockCount != nil {
		p.StockCount = *patch.StockCount
	}
	return p
}
