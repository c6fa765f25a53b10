package validator_test

import (
	"testing"

	"github.com/shoplite/storeapi/internal/dto"
	"github.com/shoplite/storeapi/internal/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_CreateProductRequest(t *testing.T) {
	v := validator.New()

	t.Run("valid_request_passes", func(t *testing.T) {
		err := v.Validate(&dto.CreateProductRequest{
			Name:       "iPhone 15 Pro",
			SKU:        "IPH15PRO",
			Price:      decimal.NewFromFloat(999.99),
			Stock:      10,
			CategoryID: 1,
		})
		assert.NoError(t, err)
	})

	t.Run("missing_fields_reported_per_field", func(t *testing.T) {
		err := v.Validate(&dto.CreateProductRequest{})

		var verr *validator.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "Name is required")
		assert.Contains(t, verr.Fields, "SKU is required")
		assert.Contains(t, verr.Fields, "CategoryID is required")
	})

	t.Run("short_sku_rejected", func(t *testing.T) {
		err := v.Validate(&dto.CreateProductRequest{
			Name:       "Widget",
			SKU:        "AB",
			Price:      decimal.NewFromInt(5),
			CategoryID: 1,
		})
		var verr *validator.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "SKU must be at least 3 characters or items")
	})
}

func TestValidator_RegisterRequest(t *testing.T) {
	v := validator.New()

	err := v.Validate(&dto.RegisterRequest{
		Email:     "not-an-email",
		Password:  "short",
		FirstName: "Ada",
		LastName:  "L",
	})

	var verr *validator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "Email must be a valid email address")
	assert.Contains(t, verr.Fields, "Password must be at least 8 characters or items")
}

func TestValidator_CreateOrderRequest_DivesIntoItems(t *testing.T) {
	v := validator.New()

	err := v.Validate(&dto.CreateOrderRequest{
		ShippingAddress: "1 Main St",
		BillingAddress:  "1 Main St",
		Items:           []dto.OrderItemRequest{{ProductID: 1, Quantity: 0}},
	})

	var verr *validator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Fields)
}
