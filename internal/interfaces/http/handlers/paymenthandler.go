package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sepapay/internal/application/payment/usecases"
	"sepapay/internal/domain/acquirer"
	"sepapay/internal/domain/transaction"
	"sepapay/internal/shared/biztime"
	"sepapay/internal/shared/logger"
	"sepapay/internal/shared/utils"
)

type PaymentHandler struct {
	acquirerRepo    acquirer.AcquirerRepository
	createTokenUC   *usecases.CreateTokenUseCase
	createTxUC      *usecases.CreateTransactionUseCase
	chargeTokenUC   *usecases.ChargeTokenUseCase
	confirmInvoice  *usecases.ConfirmInvoiceUseCase
	findTransaction *usecases.FindTransactionUseCase
	logger          logger.Interface
}

func NewPaymentHandler(
	acquirerRepo acquirer.AcquirerRepository,
	createTokenUC *usecases.CreateTokenUseCase,
	createTxUC *usecases.CreateTransactionUseCase,
	chargeTokenUC *usecases.ChargeTokenUseCase,
	confirmInvoice *usecases.ConfirmInvoiceUseCase,
	findTransaction *usecases.FindTransactionUseCase,
	logger logger.Interface,
) *PaymentHandler {
	return &PaymentHandler{
		acquirerRepo:    acquirerRepo,
		createTokenUC:   createTokenUC,
		createTxUC:      createTxUC,
		chargeTokenUC:   chargeTokenUC,
		confirmInvoice:  confirmInvoice,
		findTransaction: findTransaction,
		logger:          logger,
	}
}

type CreateTokenRequest struct {
	AcquirerID   uint   `json:"acquirer_id" binding:"required"`
	PartnerID    uint   `json:"partner_id" binding:"required"`
	PartnerName  string `json:"partner_name"`
	PartnerEmail string `json:"partner_email"`
	IBAN         string `json:"iban"`
}

type TokenResponse struct {
	TokenID     uint   `json:"token_id"`
	AcquirerRef string `json:"acquirer_ref"`
	ShortName   string `json:"short_name"`
	Verified    bool   `json:"verified"`
}

func (h *PaymentHandler) CreateToken(c *gin.Context) {
	var req CreateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if !usecases.ValidateTokenData(map[string]string{"iban": req.IBAN}) {
		utils.ErrorResponse(c, http.StatusBadRequest, "iban is required")
		return
	}

	tk, err := h.createTokenUC.Execute(c.Request.Context(), usecases.CreateTokenCommand{
		AcquirerID:   req.AcquirerID,
		PartnerID:    req.PartnerID,
		PartnerName:  req.PartnerName,
		PartnerEmail: req.PartnerEmail,
		IBAN:         req.IBAN,
	})
	if err != nil {
		h.logger.Errorw("failed to create token", "error", err, "partner_id", req.PartnerID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, TokenResponse{
		TokenID:     tk.ID(),
		AcquirerRef: tk.AcquirerRef(),
		ShortName:   tk.ShortName(),
		Verified:    tk.Verified(),
	}, "payment token created")
}

type CreateTransactionRequest struct {
	AcquirerID   uint   `json:"acquirer_id" binding:"required"`
	PartnerID    uint   `json:"partner_id" binding:"required"`
	PartnerEmail string `json:"partner_email"`
	Amount       string `json:"amount" binding:"required"`
	Currency     string `json:"currency"`
	TokenID      *uint  `json:"token_id"`
	InvoiceID    *uint  `json:"invoice_id"`
}

type TransactionResponse struct {
	TransactionID     uint   `json:"transaction_id"`
	Reference         string `json:"reference"`
	State             string `json:"state"`
	StateMessage      string `json:"state_message,omitempty"`
	AcquirerReference string `json:"acquirer_reference,omitempty"`
}

func (h *PaymentHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	tx, err := h.createTxUC.Execute(c.Request.Context(), usecases.CreateTransactionCommand{
		AcquirerID:   req.AcquirerID,
		PartnerID:    req.PartnerID,
		PartnerEmail: req.PartnerEmail,
		Amount:       req.Amount,
		Currency:     req.Currency,
		TokenID:      req.TokenID,
		InvoiceID:    req.InvoiceID,
	})
	if err != nil {
		h.logger.Errorw("failed to create transaction", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, TransactionResponse{
		TransactionID: tx.ID(),
		Reference:     tx.Reference(),
		State:         tx.State().String(),
	}, "transaction created")
}

type ChargeResponse struct {
	TransactionResponse
	DateValidate string `json:"date_validate,omitempty"`
	Accepted     bool   `json:"accepted"`
}

func formatDateValidate(tx *transaction.Transaction) string {
	if d := tx.DateValidate(); d != nil {
		return biztime.FormatMetadataTime(*d)
	}
	return ""
}

func (h *PaymentHandler) ChargeTransaction(c *gin.Context) {
	reference := c.Param("reference")
	if reference == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "reference is required")
		return
	}

	tx, accepted, err := h.chargeTokenUC.Execute(c.Request.Context(), reference)
	if err != nil {
		h.logger.Errorw("failed to charge transaction", "error", err, "reference", reference)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "charge processed", ChargeResponse{
		TransactionResponse: TransactionResponse{
			TransactionID:     tx.ID(),
			Reference:         tx.Reference(),
			State:             tx.State().String(),
			StateMessage:      tx.StateMessage(),
			AcquirerReference: tx.AcquirerReference(),
		},
		DateValidate: formatDateValidate(tx),
		Accepted:     accepted,
	})
}

type PayInvoiceRequest struct {
	TokenID uint `json:"token_id" binding:"required"`
}

type PayInvoiceResponse struct {
	Code string `json:"code"`
}

func (h *PaymentHandler) PayInvoice(c *gin.Context) {
	var uri struct {
		ID uint `uri:"id" binding:"required"`
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid invoice id")
		return
	}

	var req PayInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	code := h.confirmInvoice.Execute(c.Request.Context(), uri.ID, req.TokenID)

	// Business outcomes are always 200 with a symbolic code; the caller
	// maps codes to user-facing messages.
	utils.SuccessResponse(c, http.StatusOK, "invoice payment processed", PayInvoiceResponse{
		Code: string(code),
	})
}

type FeedbackRequest struct {
	Reference    string `json:"reference"`
	Amount       string `json:"amount"`
	ErrorMessage string `json:"error_message"`
}

func (h *PaymentHandler) HandleFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	feedback := usecases.GatewayFeedback{
		Reference:    req.Reference,
		Amount:       req.Amount,
		ErrorMessage: req.ErrorMessage,
	}

	tx, err := h.findTransaction.Execute(c.Request.Context(), feedback)
	if err != nil {
		h.logger.Errorw("failed to resolve gateway feedback", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if invalid := h.findTransaction.InvalidParameters(tx, feedback); len(invalid) > 0 {
		h.logger.Warnw("gateway feedback carries invalid parameters",
			"reference", req.Reference, "invalid", invalid)
		utils.ErrorResponse(c, http.StatusBadRequest, "gateway feedback does not match the transaction")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "transaction resolved", TransactionResponse{
		TransactionID:     tx.ID(),
		Reference:         tx.Reference(),
		State:             tx.State().String(),
		StateMessage:      tx.StateMessage(),
		AcquirerReference: tx.AcquirerReference(),
	})
}

type CheckoutValuesRequest struct {
	AcquirerID uint           `json:"acquirer_id" binding:"required"`
	Values     map[string]any `json:"values" binding:"required"`
}

func (h *PaymentHandler) CheckoutValues(c *gin.Context) {
	var req CheckoutValuesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	acq, err := h.acquirerRepo.GetByID(c.Request.Context(), req.AcquirerID)
	if err != nil {
		h.logger.Errorw("failed to get acquirer", "error", err, "acquirer_id", req.AcquirerID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	values := usecases.BuildCheckoutValues(acq, req.Values)
	values["publishable_key"] = acq.PublishableKey()
	values["image_url"] = acq.CheckoutImageURL()

	utils.SuccessResponse(c, http.StatusOK, "checkout values built", values)
}
