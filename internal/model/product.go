package model

import "github.com/google/uuid"

// ProductStatus is the closed set of catalog states
type ProductStatus string

const (
	StatusDraft     ProductStatus = "Draft"
	StatusPublished ProductStatus = "Published"
	StatusArchived  ProductStatus = "Archived"
)

func (s ProductStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// Product is never hard-deleted; IsDeleted hides it from the public listing
type Product struct {
	BaseModel
	Name      string        `gorm:"type:varchar(255);not null" json:"name"`
	Desc      string        `gorm:"column:description;type:text;not null" json:"desc"`
	Status    ProductStatus `gorm:"type:varchar(20);not null;default:'Draft';index" json:"status"`
	IsDeleted bool          `gorm:"not null;default:false;index" json:"is_deleted"`

	// User tracking
	CreatedBy uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by"`
	UpdatedBy uuid.UUID `gorm:"type:uuid;not null" json:"updated_by"`
}

// ProductPatch holds the fields a product update may change; nil means unchanged
type ProductPatch struct {
	Name   *string        `json:"name" validate:"omitempty,min=1"`
	Desc   *string        `json:"desc" validate:"omitempty,min=1"`
	Status *ProductStatus `json:"status" validate:"omitempty,enum"`
}

// Apply copies the set fields onto p
func (patch ProductPatch) Apply(p *Product) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Desc != nil {
		p.Desc = *patch.Desc
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
}
