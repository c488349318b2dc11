package order

import "errors"

var (
	ErrEmptyOrder       = errors.New("cannot checkout an empty order")
	ErrNoPendingInvoice = errors.New("no invoice pending confirmation")
)
