package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hero4147/cosmetic-compare-backend/internal/domain"
)

// Comparer is the slice of the compare service the handlers need
type Comparer interface {
	Compare(ctx context.Context, productName string) (*domain.CompareResult, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	compare Comparer
	catalog domain.CatalogRepository
}

// NewHandler creates a new HTTP handler
func NewHandler(compare Comparer, catalog domain.CatalogRepository) *Handler {
	return &Handler{
		compare: compare,
		catalog: catalog,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "cosmetic-compare-backend",
		"version": "1.0.0",
	})
}

// FullCompare handles GET /api/full-compare?product=<name>
func (h *Handler) FullCompare(c *gin.Context) {
	productName := c.Query("product")

	result, err := h.compare.Compare(c.Request.Context(), productName)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingProduct):
			c.String(http.StatusBadRequest, "Product name required")
		case errors.Is(err, domain.ErrCatalogUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": "product catalog unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// createProductRequest is the body of POST /api/products
type createProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Ingredients []string `json:"ingredients"`
	Price       float64  `json:"price" binding:"min=0"`
	Weight      float64  `json:"weight" binding:"required,gt=0"`
	Link        string   `json:"link" binding:"required"`
}

// CreateProduct handles POST /api/products
func (h *Handler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := &domain.Product{
		Name:        req.Name,
		Ingredients: req.Ingredients,
		Price:       req.Price,
		Weight:      req.Weight,
		Link:        req.Link,
	}

	if err := h.catalog.Create(c.Request.Context(), product); err != nil {
		if errors.Is(err, domain.ErrInvalidProduct) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "product catalog unavailable"})
		return
	}

	c.JSON(http.StatusCreated, product)
}
