package usecases

import (
	"context"

	"sepapay/internal/domain/transaction"
)

// ChargeNotifier sends user-facing mail about charge lifecycle events
// observed in the gateway event log. Implementations may be absent, in
// which case the poller only logs.
type ChargeNotifier interface {
	NotifyChargeFailed(ctx context.Context, tx *transaction.Transaction) error
	NotifyChargeExpired(ctx context.Context, tx *transaction.Transaction) error
}

// EventCursorStore remembers the newest gateway event id seen by the
// poller so the next list call can be bounded instead of scanning the
// full event log.
type EventCursorStore interface {
	GetCursor(ctx context.Context) (string, error)
	SetCursor(ctx context.Context, eventID string) error
}

// TransactionRunner executes a unit of work inside one database
// transaction; repositories called through the callback context join
// it. Satisfied by db.TransactionManager.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PostConfirmCallback runs after a transaction transitions to pending
// on a successful charge response. The host platform registers its own
// follow-up here, for example order validation.
type PostConfirmCallback func(ctx context.Context, tx *transaction.Transaction) error
