// Package mapper holds the field-by-field casters between persisted entities
// and transfer objects. Mapping is selection only: no business logic, and
// internals such as password hashes and audit columns stay out of responses.
package mapper

import (
	"github.com/shoplite/storeapi/internal/dto"
	"github.com/shoplite/storeapi/internal/model"
)

// ToProductResponse casts a product entity to its response shape.
func ToProductResponse(p *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		SKU:         p.SKU,
		Price:       p.Price,
		Stock:       p.Stock,
		CategoryID:  p.CategoryID,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponses casts a product slice.
func ToProductResponses(products []model.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, ToProductResponse(&products[i]))
	}
	return out
}

// FromCreateProductRequest builds a new product entity from a create request.
func FromCreateProductRequest(req *dto.CreateProductRequest) model.Product {
	return model.Product{
		Name:        req.Name,
		Description: req.Description,
		SKU:         req.SKU,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		IsActive:    req.IsActive,
	}
}

// ApplyUpdateProductRequest overwrites the mutable product fields from an
// update request.
func ApplyUpdateProductRequest(p *model.Product, req *dto.UpdateProductRequest) {
	p.Name = req.Name
	p.Description = req.Description
	p.SKU = req.SKU
	p.Price = req.Price
	p.Stock = req.Stock
	p.CategoryID = req.CategoryID
	p.IsActive = req.IsActive
}

// ToCategoryResponse casts a category entity to its response shape.
func ToCategoryResponse(c *model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCategoryResponses casts a category slice.
func ToCategoryResponses(categories []model.Category) []dto.CategoryResponse {
	out := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, ToCategoryResponse(&categories[i]))
	}
	return out
}

// FromCreateCategoryRequest builds a new category entity.
func FromCreateCategoryRequest(req *dto.CreateCategoryRequest) model.Category {
	return model.Category{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	}
}

// ApplyUpdateCategoryRequest overwrites the mutable category fields.
func ApplyUpdateCategoryRequest(c *model.Category, req *dto.UpdateCategoryRequest) {
	c.Name = req.Name
	c.Description = req.Description
	c.IsActive = req.IsActive
}

// ToOrderItemResponse casts an order line.
func ToOrderItemResponse(item *model.OrderItem) dto.OrderItemResponse {
	return dto.OrderItemResponse{
		ID:         item.ID,
		ProductID:  item.ProductID,
		Quantity:   item.Quantity,
		UnitPrice:  item.UnitPrice,
		TotalPrice: item.TotalPrice,
		Discount:   item.Discount,
		FinalPrice: item.FinalPrice,
	}
}

// ToOrderResponse casts an order entity with its items.
func ToOrderResponse(o *model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for i := range o.Items {
		items = append(items, ToOrderItemResponse(&o.Items[i]))
	}
	return dto.OrderResponse{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		UserID:          o.UserID,
		TotalAmount:     o.TotalAmount,
		Status:          string(o.Status),
		ShippingAddress: o.ShippingAddress,
		BillingAddress:  o.BillingAddress,
		Notes:           o.Notes,
		OrderedAt:       o.OrderedAt,
		ShippedAt:       o.ShippedAt,
		DeliveredAt:     o.DeliveredAt,
		Items:           items,
	}
}

// ToOrderResponses casts an order slice.
func ToOrderResponses(orders []model.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, ToOrderResponse(&orders[i]))
	}
	return out
}

// ToUserResponse casts a user entity, leaving the password hash behind.
func ToUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		DateOfBirth: u.DateOfBirth,
		Role:        u.Role,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
	}
}
