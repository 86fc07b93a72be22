package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sepapay/internal/domain/acquirer"
	"sepapay/internal/shared/logger"
	"sepapay/internal/shared/utils"
)

// AcquirerHandler is the administrative surface for gateway
// configuration records. The secret key is write-only.
type AcquirerHandler struct {
	acquirerRepo acquirer.AcquirerRepository
	logger       logger.Interface
}

func NewAcquirerHandler(acquirerRepo acquirer.AcquirerRepository, logger logger.Interface) *AcquirerHandler {
	return &AcquirerHandler{
		acquirerRepo: acquirerRepo,
		logger:       logger,
	}
}

type CreateAcquirerRequest struct {
	Provider         string `json:"provider" binding:"required"`
	CompanyName      string `json:"company_name"`
	SecretKey        string `json:"secret_key" binding:"required"`
	PublishableKey   string `json:"publishable_key" binding:"required"`
	CheckoutImageURL string `json:"checkout_image_url"`
	CaptureManually  bool   `json:"capture_manually"`
}

type AcquirerResponse struct {
	AcquirerID           uint   `json:"acquirer_id"`
	Provider             string `json:"provider"`
	CompanyName          string `json:"company_name"`
	PublishableKey       string `json:"publishable_key"`
	CheckoutImageURL     string `json:"checkout_image_url,omitempty"`
	CaptureManually      bool   `json:"capture_manually"`
	Enabled              bool   `json:"enabled"`
	SupportsTokenization bool   `json:"supports_tokenization"`
}

func acquirerResponse(acq *acquirer.Acquirer) AcquirerResponse {
	return AcquirerResponse{
		AcquirerID:           acq.ID(),
		Provider:             acq.Provider(),
		CompanyName:          acq.CompanyName(),
		PublishableKey:       acq.PublishableKey(),
		CheckoutImageURL:     acq.CheckoutImageURL(),
		CaptureManually:      acq.CaptureManually(),
		Enabled:              acq.Enabled(),
		SupportsTokenization: acq.SupportsTokenization(),
	}
}

func (h *AcquirerHandler) Create(c *gin.Context) {
	var req CreateAcquirerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	acq, err := acquirer.NewAcquirer(req.Provider, req.CompanyName, req.SecretKey, req.PublishableKey)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.CheckoutImageURL != "" {
		acq.SetCheckoutImageURL(req.CheckoutImageURL)
	}
	if req.CaptureManually {
		acq.SetCaptureManually(true)
	}

	if err := h.acquirerRepo.Create(c.Request.Context(), acq); err != nil {
		h.logger.Errorw("failed to create acquirer", "error", err, "provider", req.Provider)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, acquirerResponse(acq), "acquirer created")
}

type UpdateAcquirerRequest struct {
	CheckoutImageURL *string `json:"checkout_image_url"`
	CaptureManually  *bool   `json:"capture_manually"`
	Enabled          *bool   `json:"enabled"`
}

func (h *AcquirerHandler) Update(c *gin.Context) {
	var uri struct {
		ID uint `uri:"id" binding:"required"`
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid acquirer id")
		return
	}

	var req UpdateAcquirerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	acq, err := h.acquirerRepo.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		h.logger.Errorw("failed to get acquirer", "error", err, "acquirer_id", uri.ID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if req.CheckoutImageURL != nil {
		acq.SetCheckoutImageURL(*req.CheckoutImageURL)
	}
	if req.CaptureManually != nil {
		acq.SetCaptureManually(*req.CaptureManually)
	}
	if req.Enabled != nil {
		acq.SetEnabled(*req.Enabled)
	}

	if err := h.acquirerRepo.Update(c.Request.Context(), acq); err != nil {
		h.logger.Errorw("failed to update acquirer", "error", err, "acquirer_id", uri.ID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "acquirer updated", acquirerResponse(acq))
}

func (h *AcquirerHandler) Get(c *gin.Context) {
	var uri struct {
		ID uint `uri:"id" binding:"required"`
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid acquirer id")
		return
	}

	acq, err := h.acquirerRepo.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		h.logger.Errorw("failed to get acquirer", "error", err, "acquirer_id", uri.ID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "acquirer found", acquirerResponse(acq))
}
