package http

import (
	"github.com/tair/inventory-service/internal/category/domain"
	"github.com/tair/inventory-service/pkg/pagination"
)

// CategoryEnvelope documents the single-category response.
type CategoryEnvelope struct {
	Success bool                `json:"success"`
	Message *string             `json:"message"`
	Data    *domain.Category    `json:"data"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// CategoryListEnvelope documents the unpaginated list response.
type CategoryListEnvelope struct {
	Success bool              `json:"success"`
	Message *string           `json:"message"`
	Data    []domain.Category `json:"data"`
}

// CategoryPageEnvelope documents the paginated list response.
type CategoryPageEnvelope struct {
	Success bool                              `json:"success"`
	Message *string                           `json:"message"`
	Data    *pagination.Page[domain.Category] `json:"data"`
	Errors  map[string][]string               `json:"errors,omitempty"`
}
