package product

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/shop-ecom/internal/category"
)

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"category_id,omitempty"`
	// Category is only set when the query asked for it to be populated.
	Category  *category.Category `json:"category,omitempty"`
	Quantity  int                `json:"quantity"`
	Shipping  bool               `json:"shipping"`
	HasPhoto  bool               `json:"has_photo"`
	Photo     *Photo             `json:"-"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// Photo is stored inline with the product row.
type Photo struct {
	Data        []byte
	ContentType string
}

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	Success bool `json:"success" example:"false"`
	// example: Error in creating product
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// FilterRequest body of POST /products/filter.
// swagger:model FilterRequest
type FilterRequest struct {
	Checked []string          `json:"checked" example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Radio   []decimal.Decimal `json:"radio"   example:"0,19.99"`
}

// ListResponse is the {success, products} envelope most listings use.
// swagger:model
type ListResponse struct {
	Success  bool      `json:"success"`
	Products []Product `json:"products"`
}
