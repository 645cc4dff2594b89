package models

import "time"

// ProductGroup is the top level of the catalog taxonomy.
type ProductGroup struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"unique;not null" json:"name"`
	Slug  string `gorm:"unique;not null" json:"slug"`
	Image string `json:"image"`
	Types []Type `gorm:"foreignKey:ProductGroupID;constraint:OnDelete:CASCADE" json:"types,omitempty"`
}

// Type is a subcategory inside a ProductGroup.
type Type struct {
	ID             uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string       `gorm:"unique;not null" json:"name"`
	Slug           string       `gorm:"unique;not null" json:"slug"`
	Image          string       `json:"image"`
	ProductGroupID uint         `gorm:"not null;index" json:"-"`
	ProductGroup   ProductGroup `gorm:"foreignKey:ProductGroupID" json:"product_group,omitempty"`
	Products       []Product    `gorm:"foreignKey:TypeID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}

type Product struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"unique;not null" json:"name"` // external reference key
	Slug      string    `gorm:"unique;not null" json:"slug"`
	TypeID    uint      `gorm:"not null;index" json:"-"`
	Type      Type      `gorm:"foreignKey:TypeID" json:"type,omitempty"`
	Price     int       `gorm:"not null" json:"price"`
	InStock   int       `gorm:"not null;default:0" json:"in_stock"` // units not reserved by any cart
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GroupName reads the product group through the type.
// Caller must have preloaded Type.ProductGroup.
func (p *Product) GroupName() string {
	return p.Type.ProductGroup.Name
}
