package usecases

import (
	"context"
	"fmt"
	"strings"

	"sepapay/internal/application/payment/gateway"
	"sepapay/internal/domain/acquirer"
	"sepapay/internal/domain/invoice"
	"sepapay/internal/domain/transaction"
	apperrors "sepapay/internal/shared/errors"
	"sepapay/internal/shared/logger"
)

const eventPageLimit = 100

// PollChargeEventsUseCase scans the gateway event log for charge
// lifecycle events matching locally pending transactions. The newest
// seen event id is kept as a cursor so each poll only reads events that
// arrived since the last one; an absent cursor degrades to a full scan.
type PollChargeEventsUseCase struct {
	acquirerRepo acquirer.AcquirerRepository
	txRepo       transaction.TransactionRepository
	invoiceRepo  invoice.InvoiceRepository
	gateway      gateway.PaymentGateway
	cursor       EventCursorStore
	notifier     ChargeNotifier
	confirm      *ConfirmInvoiceUseCase
	logger       logger.Interface
}

func NewPollChargeEventsUseCase(
	acquirerRepo acquirer.AcquirerRepository,
	txRepo transaction.TransactionRepository,
	invoiceRepo invoice.InvoiceRepository,
	gw gateway.PaymentGateway,
	cursor EventCursorStore,
	notifier ChargeNotifier,
	confirm *ConfirmInvoiceUseCase,
	logger logger.Interface,
) *PollChargeEventsUseCase {
	return &PollChargeEventsUseCase{
		acquirerRepo: acquirerRepo,
		txRepo:       txRepo,
		invoiceRepo:  invoiceRepo,
		gateway:      gw,
		cursor:       cursor,
		notifier:     notifier,
		confirm:      confirm,
		logger:       logger,
	}
}

// Execute runs one poll cycle. The cursor only advances past events
// that were applied, so an event whose handling failed is retried on
// the next cycle instead of being skipped forever.
func (uc *PollChargeEventsUseCase) Execute(ctx context.Context) error {
	pending, err := uc.txRepo.ListPendingWithAcquirerReference(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list pending transactions", "error", err)
		return fmt.Errorf("failed to list pending transactions: %w", err)
	}
	if len(pending) == 0 {
		uc.logger.Debugw("no pending transactions to reconcile")
		return nil
	}

	byCharge := make(map[string]*transaction.Transaction, len(pending))
	for _, tx := range pending {
		byCharge[tx.AcquirerReference()] = tx
	}

	acq, err := uc.acquirerRepo.GetByProvider(ctx, acquirer.ProviderStripe)
	if err != nil {
		uc.logger.Errorw("failed to get acquirer", "error", err)
		return fmt.Errorf("failed to get acquirer: %w", err)
	}

	lastSeen, err := uc.cursor.GetCursor(ctx)
	if err != nil {
		// A lost cursor only costs a wider scan.
		uc.logger.Warnw("failed to read event cursor, falling back to full scan", "error", err)
		lastSeen = ""
	}

	events, err := uc.gateway.ListEvents(ctx, gateway.Credentials{SecretKey: acq.SecretKey()}, gateway.ListEventsRequest{
		EndingBefore: lastSeen,
		Limit:        eventPageLimit,
	})
	if err != nil {
		uc.logger.Errorw("failed to list gateway events", "error", err)
		return fmt.Errorf("failed to list gateway events: %w", err)
	}
	if events.Err != nil {
		uc.logger.Errorw("gateway refused the event listing",
			"gateway_message", events.Err.Message, "gateway_code", events.Err.Code)
		return apperrors.NewGatewayError("failed to list gateway events", events.Err.Message)
	}
	if len(events.Data) == 0 {
		return nil
	}

	// The gateway lists newest first; apply oldest first so state
	// transitions arrive in order. On the first handling failure the
	// cycle stops, leaving the cursor on the last applied event.
	var lastApplied string
	var handleErr error
	for i := len(events.Data) - 1; i >= 0; i-- {
		ev := events.Data[i]
		if strings.Contains(ev.Type, "charge") {
			if tx, ok := byCharge[ev.Data.Object.ID]; ok {
				if err := uc.handleChargeEvent(ctx, ev, tx); err != nil {
					handleErr = err
					break
				}
			}
		}
		lastApplied = ev.ID
	}

	if lastApplied != "" {
		if err := uc.cursor.SetCursor(ctx, lastApplied); err != nil {
			uc.logger.Warnw("failed to store event cursor", "error", err, "event_id", lastApplied)
		}
	}

	if handleErr != nil {
		return fmt.Errorf("failed to apply charge event: %w", handleErr)
	}
	return nil
}

// handleChargeEvent applies one matched event. A returned error means
// the event must be retried on the next cycle; business refusals and
// mail failures are logged and count as applied.
func (uc *PollChargeEventsUseCase) handleChargeEvent(ctx context.Context, ev gateway.Event, tx *transaction.Transaction) error {
	switch ev.Type {
	case "charge.succeeded":
		uc.logger.Infow("charge succeeded", "reference", tx.Reference(), "charge_id", ev.Data.Object.ID)
		if err := tx.MarkDone(); err != nil {
			uc.logger.Warnw("cannot settle transaction", "error", err, "reference", tx.Reference())
			return nil
		}
		if err := uc.txRepo.Update(ctx, tx); err != nil {
			uc.logger.Errorw("failed to update transaction", "error", err, "reference", tx.Reference())
			return fmt.Errorf("failed to update transaction %s: %w", tx.Reference(), err)
		}
		if tx.InvoiceID() != nil {
			inv, err := uc.invoiceRepo.GetByID(ctx, *tx.InvoiceID())
			if err != nil {
				uc.logger.Errorw("failed to get invoice", "error", err, "invoice_id", *tx.InvoiceID())
				return fmt.Errorf("failed to get invoice %d: %w", *tx.InvoiceID(), err)
			}
			code := uc.confirm.ConfirmTransaction(ctx, tx, inv)
			if code != CodeConfirmed {
				uc.logger.Warnw("invoice confirmation refused after settled charge",
					"reference", tx.Reference(), "invoice_id", inv.ID(), "code", string(code))
			}
		}

	case "charge.failed":
		uc.logger.Warnw("charge failed", "reference", tx.Reference(), "charge_id", ev.Data.Object.ID)
		if uc.notifier != nil {
			if err := uc.notifier.NotifyChargeFailed(ctx, tx); err != nil {
				uc.logger.Errorw("failed to send charge-failed mail", "error", err, "reference", tx.Reference())
			}
		}

	case "charge.expired":
		uc.logger.Warnw("charge expired", "reference", tx.Reference(), "charge_id", ev.Data.Object.ID)
		if uc.notifier != nil {
			if err := uc.notifier.NotifyChargeExpired(ctx, tx); err != nil {
				uc.logger.Errorw("failed to send charge-expired mail", "error", err, "reference", tx.Reference())
			}
		}

	case "charge.pending":
		uc.logger.Infow("charge still pending", "reference", tx.Reference(), "charge_id", ev.Data.Object.ID)
	}

	return nil
}
