package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"estoque/internal/models"
	"estoque/internal/repositories"
	"estoque/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, logger *zap.Logger) *ProductHandler {
	validate := validator.New()
	// notblank: at least one non-whitespace character. min=3 alone would
	// accept a name made of spaces.
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &ProductHandler{
		service:  service,
		validate: validate,
		logger:   logger,
	}
}

// RegisterRoutes registers the product routes with the Fiber app. The
// diagnostic and destructive routes live under /test, matching the public
// surface; the clear route additionally passes through the admin guard.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, adminGuard fiber.Handler) {
	router.Post("/products", h.HandleCreateProduct)
	router.Put("/products/:id", h.HandleUpdateProduct)
	router.Delete("/products/:id", h.HandleDeleteProduct)

	testRoutes := router.Group("/test")
	testRoutes.Get("/check-db/:id", h.HandleCheckProduct)
	testRoutes.Delete("/clear-database", adminGuard, h.HandleClearDatabase)
}

// HandleCreateProduct inserts a new product and returns its assigned id.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var input models.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "validation failed",
			"details": validationDetails(err),
		})
	}

	product := models.Product{
		Name:     input.Name,
		Price:    input.Price,
		Quantity: *input.Quantity,
	}
	if err := h.service.CreateProduct(c.Context(), &product); err != nil {
		h.logger.Error("failed to save product", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not save product",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      product.ID,
		"message": "product saved successfully",
	})
}

// HandleCheckProduct is a diagnostic read used to verify a product row was
// persisted.
func (h *ProductHandler) HandleCheckProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid product id",
		})
	}

	product, err := h.service.GetProductByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "product not found in database",
			})
		}
		h.logger.Error("failed to get product", zap.Int64("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not retrieve product",
		})
	}

	return c.JSON(product)
}

// HandleUpdateProduct overwrites all mutable fields of an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid product id",
		})
	}

	var input models.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "validation failed",
			"details": validationDetails(err),
		})
	}

	product := models.Product{
		ID:       id,
		Name:     input.Name,
		Price:    input.Price,
		Quantity: *input.Quantity,
	}
	if err := h.service.UpdateProduct(c.Context(), &product); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "product not found for update",
			})
		}
		h.logger.Error("failed to update product", zap.Int64("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not update product",
		})
	}

	return c.JSON(fiber.Map{
		"message": "product updated successfully",
	})
}

// HandleDeleteProduct removes a single product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid product id",
		})
	}

	if err := h.service.DeleteProduct(c.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "product not found for deletion",
			})
		}
		h.logger.Error("failed to delete product", zap.Int64("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not delete product",
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("product %d removed successfully", id),
	})
}

// HandleClearDatabase removes every product. The admin guard has already run
// by the time this handler is reached.
func (h *ProductHandler) HandleClearDatabase(c *fiber.Ctx) error {
	if err := h.service.ClearProducts(c.Context()); err != nil {
		h.logger.Error("failed to clear products", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not clear database",
		})
	}

	return c.JSON(fiber.Map{
		"message": "database cleared successfully",
	})
}

// validationDetails flattens validator errors into a field -> message map.
func validationDetails(err error) map[string]string {
	details := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			details[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return details
}
