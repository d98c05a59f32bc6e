package http

import (
	"github.com/tair/inventory-service/internal/unit/domain"
	"github.com/tair/inventory-service/pkg/pagination"
)

// UnitEnvelope documents the single-unit response.
type UnitEnvelope struct {
	Success bool                `json:"success"`
	Message *string             `json:"message"`
	Data    *domain.Unit    `json:"data"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// UnitListEnvelope documents the unpaginated list response.
type UnitListEnvelope struct {
	Success bool              `json:"success"`
	Message *string           `json:"message"`
	Data    []domain.Unit `json:"data"`
}

// UnitPageEnvelope documents the paginated list response.
type UnitPageEnvelope struct {
	Success bool                              `json:"success"`
	Message *string                           `json:"message"`
	Data    *pagination.Page[domain.Unit] `json:"data"`
	Errors  map[string][]string               `json:"errors,omitempty"`
}
