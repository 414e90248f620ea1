package service

import (
	"context"
	"errors"
	"fmt"

	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventPublisher fans product changes out to live subscribers
type EventPublisher interface {
	Publish(payload interface{})
}

type CatalogService interface {
	ListPublic(ctx context.Context) ([]model.Product, error)
	ListAll(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, req *CreateProductRequest, actorID uuid.UUID) (*model.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, patch *model.ProductPatch, actorID uuid.UUID) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*model.Product, error)
}

type CreateProductRequest struct {
	Name   string              `json:"name"`
	Desc   string              `json:"desc"`
	Status model.ProductStatus `json:"status" validate:"omitempty,enum"`
}

type catalogService struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	events      EventPublisher
}

func NewCatalogService(pRepo repository.ProductRepository, uRepo repository.UserRepository, events EventPublisher) CatalogService {
	return &catalogService{
		productRepo: pRepo,
		userRepo:    uRepo,
		events:      events,
	}
}

func (s *catalogService) ListPublic(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.FindPublished(ctx)
}

func (s *catalogService) ListAll(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.FindAll(ctx)
}

func (s *catalogService) CreateProduct(ctx context.Context, req *CreateProductRequest, actorID uuid.UUID) (*model.Product, error) {
	if req.Name == "" || req.Desc == "" {
		return nil, ErrMissingFields
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalidInput, errs[0].FailedField, errs[0].Tag)
	}

	actor, err := s.loadActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.StatusDraft
	}

	product := &model.Product{
		Name:      req.Name,
		Desc:      req.Desc,
		Status:    status,
		CreatedBy: actor.ID,
		UpdatedBy: actor.ID,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.publish("product_created", product, actor)
	return product, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, patch *model.ProductPatch, actorID uuid.UUID) (*model.Product, error) {
	if errs := validator.ValidateStruct(patch); len(errs) > 0 {
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalidInput, errs[0].FailedField, errs[0].Tag)
	}

	product, actor, err := s.authorize(ctx, id, actorID)
	if err != nil {
		return nil, err
	}

	patch.Apply(product)
	product.UpdatedBy = actor.ID

	// last write wins; there is no version check on concurrent updates
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.publish("product_updated", product, actor)
	return product, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*model.Product, error) {
	product, actor, err := s.authorize(ctx, id, actorID)
	if err != nil {
		return nil, err
	}

	product.IsDeleted = true
	product.UpdatedBy = actor.ID

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("soft delete product: %w", err)
	}

	s.publish("product_deleted", product, actor)
	return product, nil
}

// authorize loads the product and the actor and checks the actor may modify it
func (s *catalogService) authorize(ctx context.Context, id, actorID uuid.UUID) (*model.Product, *model.User, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrProductNotFound
		}
		return nil, nil, fmt.Errorf("find product: %w", err)
	}

	actor, err := s.loadActor(ctx, actorID)
	if err != nil {
		return nil, nil, err
	}

	if !actor.CanModify(product) {
		return nil, nil, ErrForbidden
	}
	return product, actor, nil
}

func (s *catalogService) loadActor(ctx context.Context, actorID uuid.UUID) (*model.User, error) {
	actor, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActorNotFound
		}
		return nil, fmt.Errorf("find actor: %w", err)
	}
	return actor, nil
}

func (s *catalogService) publish(action string, p *model.Product, actor *model.User) {
	if s.events == nil {
		return
	}
	s.events.Publish(map[string]interface{}{
		"type":   "product_update",
		"action": action,
		"product": map[string]interface{}{
			"id":         p.ID,
			"name":       p.Name,
			"status":     p.Status,
			"is_deleted": p.IsDeleted,
		},
		"user": map[string]interface{}{
			"id":   actor.ID,
			"name": actor.Name,
		},
		"message": fmt.Sprintf("%s %s '%s'", actor.Name, verbs[action], p.Name),
	})
}

var verbs = map[string]string{
	"product_created": "created product",
	"product_updated": "updated product",
	"product_deleted": "deleted product",
}
