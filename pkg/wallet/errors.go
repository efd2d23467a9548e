package wallet

import "errors"

var (
	ErrBalanceUnavailable = errors.New("wallet: balance unavailable")
	ErrInvalidCustomerID  = errors.New("wallet: customer id is required")
)
