package pos

import "errors"

var (
	ErrEmptyOrder         = errors.New("order has no items")
	ErrInvalidItem        = errors.New("invalid order item")
	ErrVoucherNotFound    = errors.New("voucher not found or expired")
	ErrMemberNotFound     = errors.New("member not found")
	ErrInventoryNotFound  = errors.New("inventory not found")
	ErrPriceUnresolved    = errors.New("item price could not be resolved")
	ErrInsufficientPoints = errors.New("insufficient member points")
	ErrInsufficientCash   = errors.New("amount paid is less than total payable")
	ErrUnsupportedPayment = errors.New("unsupported payment type")
)
