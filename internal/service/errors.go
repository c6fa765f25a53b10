package service

import (
	"errors"

	"github.com/shoplite/storeapi/internal/repository"
)

// Typed error kinds for the boundary layer to map onto HTTP statuses.
// Handlers match with errors.Is; no message inspection anywhere.
var (
	ErrNotFound           = repository.ErrNotFound
	ErrDuplicateSKU       = errors.New("product with this SKU already exists")
	ErrDuplicateName      = errors.New("category with this name already exists")
	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrCategoryInUse      = repository.ErrCategoryInUse
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrInvalidPrice       = errors.New("price must not be negative")
	ErrInvalidStatus      = errors.New("unknown order status")
	ErrInvalidTransition  = errors.New("order status transition not allowed")
	ErrInsufficientStock  = errors.New("not enough stock for requested quantity")
	ErrProductInactive    = errors.New("product is not active")
)
