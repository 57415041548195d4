package domain

import (
	"errors"
	"time"
)

var ErrActivityNotFound = errors.New("domain: activity not found")

// Activity is the persisted record of one terminal dispatch outcome.
type Activity struct {
	ID          string
	Kind        ActionKind
	Address     string
	Status      Status
	Stage       Stage
	FailureKind FailureKind
	Title       string
	Message     string
	TxHash      string
	BlockNumber uint64
	// Detail holds extra context that never reaches the chain, such as an
	// appeal's reason and supporting document.
	Detail    string
	CreatedAt time.Time
}
