package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleStandard.IsValid())
	assert.False(t, Role("admin").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestProductStatus_IsValid(t *testing.T) {
	assert.True(t, StatusDraft.IsValid())
	assert.True(t, StatusPublished.IsValid())
	assert.True(t, StatusArchived.IsValid())
	assert.False(t, ProductStatus("published").IsValid())
	assert.False(t, ProductStatus("").IsValid())
}

func TestUser_Password(t *testing.T) {
	u := &User{}
	require.NoError(t, u.SetPassword("pw123456"))

	assert.NotEqual(t, "pw123456", u.Password)
	assert.True(t, u.CheckPassword("pw123456"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestUser_CanModify(t *testing.T) {
	creator := &User{BaseModel: BaseModel{ID: uuid.New()}, Role: RoleStandard}
	other := &User{BaseModel: BaseModel{ID: uuid.New()}, Role: RoleStandard}
	admin := &User{BaseModel: BaseModel{ID: uuid.New()}, Role: RoleAdmin}
	p := &Product{CreatedBy: creator.ID}

	assert.True(t, creator.CanModify(p))
	assert.False(t, other.CanModify(p))
	assert.True(t, admin.CanModify(p))
}

func TestProductPatch_Apply(t *testing.T) {
	p := &Product{Name: "Widget", Desc: "d", Status: StatusDraft}
	name := "Gadget"
	status := StatusPublished

	ProductPatch{Name: &name, Status: &status}.Apply(p)

	assert.Equal(t, "Gadget", p.Name)
	assert.Equal(t, "d", p.Desc)
	assert.Equal(t, StatusPublished, p.Status)
}
