package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrDuplicateEmail is returned by StoreUser when the email is already
	// registered. It maps the storage-level uniqueness violation without
	// leaking driver error types into the service layer.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicateDailyCheckIn is returned by StoreCheckIn when the user
	// already holds a check-in for that calendar day. The unique index is the
	// authority under concurrent writes; the service-layer read is only a
	// fast path.
	ErrDuplicateDailyCheckIn = errors.New("check-in already exists for that day")
)
