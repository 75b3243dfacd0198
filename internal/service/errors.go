package service

import "errors"

var (
	ErrShopNotFound       = errors.New("shop not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product unavailable")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrQuantityInvalid    = errors.New("quantity must be > 0")
	ErrMixedShopCart      = errors.New("cart already holds items from another shop")
	ErrInvalidTransition  = errors.New("invalid status transition")
	// ErrCheckoutFailed wraps a persistence fault during the checkout
	// transaction. Nothing was committed; the caller must ask the user to
	// retry explicitly.
	ErrCheckoutFailed = errors.New("checkout transaction failed")
)
