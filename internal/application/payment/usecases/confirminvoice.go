package usecases

import (
	"context"
	"fmt"

	"sepapay/internal/domain/acquirer"
	"sepapay/internal/domain/invoice"
	"sepapay/internal/domain/token"
	"sepapay/internal/domain/transaction"
	vo "sepapay/internal/domain/transaction/valueobjects"
	"sepapay/internal/shared/logger"
)

// ConfirmationCode is the symbolic outcome of paying an invoice with a
// stored token. Failure codes are distinct so the caller can present
// differentiated user-facing messages; none of them is an error value.
type ConfirmationCode string

const (
	CodeConfirmed       ConfirmationCode = "pay_invoice_confirmed"
	CodeInvalidDocState ConfirmationCode = "pay_invoice_invalid_doc_state"
	CodeTxAmount        ConfirmationCode = "pay_invoice_tx_amount"
	CodeTxToken         ConfirmationCode = "pay_invoice_tx_token"
	CodeTxFail          ConfirmationCode = "pay_invoice_tx_fail"
	CodeTxState         ConfirmationCode = "pay_invoice_tx_state"
	CodeTxConfirm       ConfirmationCode = "pay_invoice_tx_confirm"
)

// ConfirmInvoiceUseCase pays an open invoice with a stored token and
// reconciles the resulting transaction state against the invoice.
// Every failure is reported as a ConfirmationCode, never as a returned
// error; infrastructure problems are logged and folded into the code of
// the phase they occurred in.
type ConfirmInvoiceUseCase struct {
	invoiceRepo  invoice.InvoiceRepository
	tokenRepo    token.TokenRepository
	acquirerRepo acquirer.AcquirerRepository
	createTx     *CreateTransactionUseCase
	chargeToken  *ChargeTokenUseCase
	logger       logger.Interface
}

func NewConfirmInvoiceUseCase(
	invoiceRepo invoice.InvoiceRepository,
	tokenRepo token.TokenRepository,
	acquirerRepo acquirer.AcquirerRepository,
	createTx *CreateTransactionUseCase,
	chargeToken *ChargeTokenUseCase,
	logger logger.Interface,
) *ConfirmInvoiceUseCase {
	return &ConfirmInvoiceUseCase{
		invoiceRepo:  invoiceRepo,
		tokenRepo:    tokenRepo,
		acquirerRepo: acquirerRepo,
		createTx:     createTx,
		chargeToken:  chargeToken,
		logger:       logger,
	}
}

// Execute charges the token for the invoice total and confirms the
// invoice against the outcome.
func (uc *ConfirmInvoiceUseCase) Execute(ctx context.Context, invoiceID, tokenID uint) ConfirmationCode {
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		uc.logger.Errorw("failed to get invoice", "error", err, "invoice_id", invoiceID)
		return CodeTxFail
	}

	if !inv.IsOpen() {
		uc.logger.Warnw("invoice is not open for payment", "invoice_id", invoiceID, "state", inv.State())
		return CodeInvalidDocState
	}

	tk, err := uc.tokenRepo.GetByID(ctx, tokenID)
	if err != nil {
		uc.logger.Errorw("failed to get token", "error", err, "token_id", tokenID)
		return CodeTxToken
	}
	if tk.PartnerID() != inv.PartnerID() {
		uc.logger.Warnw("token does not belong to the invoice partner",
			"token_id", tokenID, "token_partner_id", tk.PartnerID(), "invoice_partner_id", inv.PartnerID())
		return CodeTxToken
	}

	tkID := tk.ID()
	invID := inv.ID()
	tx, err := uc.createTx.Execute(ctx, CreateTransactionCommand{
		AcquirerID: tk.AcquirerID(),
		PartnerID:  inv.PartnerID(),
		Amount:     inv.AmountTotal().String(),
		Currency:   "EUR",
		TokenID:    &tkID,
		InvoiceID:  &invID,
	})
	if err != nil {
		uc.logger.Errorw("failed to create transaction for invoice", "error", err, "invoice_id", invoiceID)
		return CodeTxFail
	}

	tx, _, err = uc.chargeToken.Execute(ctx, tx.Reference())
	if err != nil {
		uc.logger.Errorw("charge attempt failed", "error", err, "reference", tx.Reference())
		return CodeTxFail
	}

	return uc.ConfirmTransaction(ctx, tx, inv)
}

// ConfirmTransaction reconciles one charged transaction against its
// invoice. It is also the entry point for the event poller once a
// charge settles and the transaction is done.
func (uc *ConfirmInvoiceUseCase) ConfirmTransaction(ctx context.Context, tx *transaction.Transaction, inv *invoice.Invoice) ConfirmationCode {
	if !tx.Amount().EqualsWithinTolerance(inv.AmountTotal()) {
		body := fmt.Sprintf(
			"The payment transaction %s amount (%s) does not match the invoice total (%s). The invoice was not confirmed.",
			tx.Reference(), tx.Amount().String(), inv.AmountTotal().StringFixed(2),
		)
		if err := uc.invoiceRepo.PostMessage(ctx, inv.ID(), "Payment amount mismatch", body); err != nil {
			uc.logger.Errorw("failed to post mismatch note", "error", err, "invoice_id", inv.ID())
		}
		uc.logger.Warnw("transaction amount does not match invoice total",
			"reference", tx.Reference(), "tx_amount", tx.Amount().String(), "invoice_total", inv.AmountTotal().StringFixed(2))
		return CodeTxAmount
	}

	switch tx.State() {
	case vo.TxStateAuthorized:
		acq, err := uc.acquirerRepo.GetByID(ctx, tx.AcquirerID())
		if err != nil {
			uc.logger.Errorw("failed to get acquirer", "error", err, "acquirer_id", tx.AcquirerID())
			return CodeTxConfirm
		}
		if acq.CaptureManually() {
			// Capture happens later by hand; nothing to confirm yet.
			return CodeConfirmed
		}
		return CodeTxState

	case vo.TxStatePending:
		// The gateway accepted the debit; settlement arrives through the
		// event log and pays the invoice then.
		return CodeConfirmed

	case vo.TxStateDone:
		if err := inv.MarkPaid(); err != nil {
			uc.logger.Errorw("failed to mark invoice paid", "error", err, "invoice_id", inv.ID())
			return CodeTxConfirm
		}
		if err := uc.invoiceRepo.Update(ctx, inv); err != nil {
			uc.logger.Errorw("failed to update invoice", "error", err, "invoice_id", inv.ID())
			return CodeTxConfirm
		}
		uc.logger.Infow("invoice paid", "invoice_id", inv.ID(), "reference", tx.Reference())
		return CodeConfirmed

	default:
		uc.logger.Warnw("transaction state does not allow confirmation",
			"reference", tx.Reference(), "state", tx.State())
		return CodeTxState
	}
}
