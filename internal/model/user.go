package model

import (
	"go-catalog-api/pkg/hash"
)

// User represents an account that can sign in and own products
type User struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Username string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Password string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	Role     Role   `gorm:"type:varchar(20);not null;default:'standard'" json:"role"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	digest, err := hash.Hash(password)
	if err != nil {
		return err
	}
	u.Password = digest
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	return hash.Verify(password, u.Password)
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanModify reports whether the user may update or delete the product
func (u *User) CanModify(p *Product) bool {
	return u.IsAdmin() || u.ID == p.CreatedBy
}
