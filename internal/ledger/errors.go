package ledger

import "errors"

// Domain errors returned by engine operations. Every operation validates
// before mutating, so a returned error means state is unchanged. The
// front-end classifies with errors.Is and renders its own messages.
var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords, so login failures do not leak which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrCardNotFound means no account owns the recipient card number.
	ErrCardNotFound = errors.New("card not found")

	// ErrSelfTransfer means the recipient card belongs to the sender.
	ErrSelfTransfer = errors.New("cannot transfer to your own card")

	// ErrInvalidAmount means the amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds means the debited balance would go negative.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientHoldings means the account owns less of the asset
	// than it is trying to sell.
	ErrInsufficientHoldings = errors.New("insufficient holdings")

	// ErrActiveDebt means a credit line is already open; it must be
	// repaid before a new one can be issued.
	ErrActiveDebt = errors.New("active credit debt exists")

	// ErrUnknownAsset means the symbol is not tradable on the exchange.
	ErrUnknownAsset = errors.New("unknown asset")
)
