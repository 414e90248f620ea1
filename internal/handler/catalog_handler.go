package handler

import (
	"go-catalog-api/internal/middleware"
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const internalError = "Internal server error"

type CatalogHandler struct {
	service service.CatalogService
	log     *logrus.Logger
}

func NewCatalogHandler(s service.CatalogService, log *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{service: s, log: log}
}

// actorID reads the identity set by RequireAuth
func actorID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return uuid.Nil, false
	}
	return id.UserID, true
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
}

// GetPublishedProducts lists published, non-deleted products
// GET /products
func (h *CatalogHandler) GetPublishedProducts(c *fiber.Ctx) error {
	products, err := h.service.ListPublic(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, internalError)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Products fetched successfully",
		"count":   len(products),
		"data":    products,
	})
}

// GetAllProducts lists every product, drafts and soft-deleted included
// GET /allProducts
func (h *CatalogHandler) GetAllProducts(c *fiber.Ctx) error {
	products, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, internalError)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "products fetched successfully",
		"count":   len(products),
		"data":    products,
	})
}

// CreateProduct
// POST /product
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	actor, ok := actorID(c)
	if !ok {
		return unauthenticated(c)
	}

	var req service.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid JSON"})
	}

	product, err := h.service.CreateProduct(c.UserContext(), &req, actor)
	if err != nil {
		return respondError(c, h.log, err, internalError)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Product created successfully",
		"data":    product,
	})
}

// UpdateProduct applies a partial patch
// PUT /product/:id
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	actor, ok := actorID(c)
	if !ok {
		return unauthenticated(c)
	}

	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid product ID"})
	}

	var patch model.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid JSON"})
	}

	updated, err := h.service.UpdateProduct(c.UserContext(), productID, &patch, actor)
	if err != nil {
		return respondError(c, h.log, err, internalError)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product updated successfully",
		"data":    updated,
	})
}

// DeleteProduct soft-deletes; the row stays visible in /allProducts
// DELETE /product/:id
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	actor, ok := actorID(c)
	if !ok {
		return unauthenticated(c)
	}

	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid product ID"})
	}

	deleted, err := h.service.DeleteProduct(c.UserContext(), productID, actor)
	if err != nil {
		return respondError(c, h.log, err, internalError)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product deleted successfully",
		"data":    deleted,
	})
}
