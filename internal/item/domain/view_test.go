package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-service/pkg/pagination"
)

func TestNewItemView_PriceIsFixedString(t *testing.T) {
	view := NewItemView(&Item{ID: 3, Name: "Aspirin", Price: decimal.RequireFromString("12.5"), StockQuantity: 4})

	assert.Equal(t, "12.50", view.Price)

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"price":"12.50"`)
	assert.NotContains(t, string(raw), `"category"`)
}

func TestNewItemView_PreservesPrecision(t *testing.T) {
	view := NewItemView(&Item{Price: decimal.RequireFromString("9999999999.99")})
	assert.Equal(t, "9999999999.99", view.Price)

	assert.Nil(t, NewItemView(nil))
}

func TestNewItemViewPage(t *testing.T) {
	page := pagination.NewPage[Item](nil, 0, pagination.Params{Page: 1, Limit: 10})
	views := NewItemViewPage(&page)

	require.NotNil(t, views)
	assert.NotNil(t, views.Items)
	assert.Equal(t, 0, views.TotalPages)
	assert.Nil(t, NewItemViewPage(nil))
}
