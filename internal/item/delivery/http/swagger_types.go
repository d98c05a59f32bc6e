package http

import (
	"github.com/tair/inventory-service/internal/item/domain"
	"github.com/tair/inventory-service/pkg/pagination"
)

// ItemEnvelope documents the single-item response.
type ItemEnvelope struct {
	Success bool                `json:"success"`
	Message *string             `json:"message"`
	Data    *domain.ItemView    `json:"data"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// ItemListEnvelope documents the item picker response.
type ItemListEnvelope struct {
	Success bool              `json:"success"`
	Message *string           `json:"message"`
	Data    []domain.ItemView `json:"data"`
}

// ItemPageEnvelope documents the paginated list response.
type ItemPageEnvelope struct {
	Success bool                              `json:"success"`
	Message *string                           `json:"message"`
	Data    *pagination.Page[domain.ItemView] `json:"data"`
	Errors  map[string][]string               `json:"errors,omitempty"`
}
