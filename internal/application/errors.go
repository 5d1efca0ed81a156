package application

import "errors"

var (
	// ErrValidation wraps every input problem caught before a write.
	ErrValidation       = errors.New("invalid input")
	ErrContractNotFound = errors.New("contract not found")
	ErrAlreadySigned    = errors.New("this partner has already signed the contract")

	ErrCreateFailed = errors.New("failed to create contract")
	ErrSignFailed   = errors.New("failed to sign contract")
	ErrLoadFailed   = errors.New("failed to load contract")
)
