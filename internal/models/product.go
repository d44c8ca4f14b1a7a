package models

import "time"

// Category is the closed set of product categories carried by the catalog.
type Category string

const (
	CategorySneakers Category = "SNEAKERS"
	CategoryFormal   Category = "FORMAL"
	CategoryCasual   Category = "CASUAL"
	CategoryBoots    Category = "BOOTS"
	CategorySandals  Category = "SANDALS"
)

// ParseCategory converts a raw string into a Category.
// The boolean is false for values outside the closed set.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategorySneakers, CategoryFormal, CategoryCasual, CategoryBoots, CategorySandals:
		return Category(s), true
	}
	return "", false
}

// Genre is the target audience of a product.
type Genre string

const (
	GenreMens   Genre = "MENS"
	GenreWomens Genre = "WOMENS"
	GenreUnisex Genre = "UNISEX"
	GenreKids   Genre = "KIDS"
)

// ParseGenre converts a raw string into a Genre.
func ParseGenre(s string) (Genre, bool) {
	switch Genre(s) {
	case GenreMens, GenreWomens, GenreUnisex, GenreKids:
		return Genre(s), true
	}
	return "", false
}

// Size is one sellable size of a product. Value is unique per product.
type Size struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID string `json:"product_id" gorm:"type:varchar(36);uniqueIndex:idx_product_size"`
	Value     string `json:"value" gorm:"uniqueIndex:idx_product_size" validate:"required"`
	Inventory int    `json:"inventory" validate:"gte=0"`
}

// ProductImage is one gallery image of a product. Position drives display
// order; at most one image per product should be flagged as main.
type ProductImage struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID   string `json:"product_id" gorm:"type:varchar(36);uniqueIndex:idx_product_position"`
	OriginalURL string `json:"original_url" validate:"required,url"`
	StandardURL string `json:"standard_url"`
	PublicID    string `json:"public_id"`
	IsMain      bool   `json:"is_main"`
	Position    int    `json:"position" gorm:"uniqueIndex:idx_product_position" validate:"gte=0"`
}

// Product is the root catalog entity.
type Product struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string         `json:"name" validate:"required,min=3,max=100"`
	Description string         `json:"description" validate:"omitempty,max=500"`
	Category    Category       `json:"category" gorm:"type:varchar(20)" validate:"required"`
	Genre       Genre          `json:"genre" gorm:"type:varchar(20)" validate:"required"`
	Price       float64        `json:"price" validate:"required,gt=0"`
	SalePrice   *float64       `json:"sale_price,omitempty" validate:"omitempty,gt=0"`
	Featured    bool           `json:"featured"`
	IsNew       bool           `json:"is_new"`
	BrandID     string         `json:"brand_id" gorm:"type:varchar(36)"`
	Brand       *Brand         `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
	Images      []ProductImage `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Sizes       []Size         `json:"sizes" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// EffectivePrice is the price the storefront displays: the sale price when one
// is set and actually lower than the list price, otherwise the list price.
func (p Product) EffectivePrice() float64 {
	if p.SalePrice != nil && *p.SalePrice < p.Price {
		return *p.SalePrice
	}
	return p.Price
}

// IsOnSale reports whether the product carries a real discount. A sale price
// equal to or above the list price does not count.
func (p Product) IsOnSale() bool {
	return p.SalePrice != nil && *p.SalePrice < p.Price
}

// BrandName returns the denormalized brand name, or "" when the brand has not
// been joined.
func (p Product) BrandName() string {
	if p.Brand == nil {
		return ""
	}
	return p.Brand.Name
}

// MainImage picks the gallery image to show on cards: the one flagged as main,
// falling back to the lowest position, then to the first in sequence. Nil when
// the product has no images.
func (p Product) MainImage() *ProductImage {
	if len(p.Images) == 0 {
		return nil
	}
	best := 0
	for i := range p.Images {
		if p.Images[i].IsMain {
			return &p.Images[i]
		}
		if p.Images[i].Position < p.Images[best].Position {
			best = i
		}
	}
	return &p.Images[best]
}

// InStock reports whether at least one size has inventory available.
func (p Product) InStock() bool {
	for _, s := range p.Sizes {
		if s.Inventory > 0 {
			return true
		}
	}
	return false
}
