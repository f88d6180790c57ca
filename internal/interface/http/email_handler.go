package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kashvi-creations/storefront-api/config"
	"github.com/kashvi-creations/storefront-api/pkg/mailer"
	tpl "github.com/kashvi-creations/storefront-api/pkg/mailer/templates"
	"github.com/kashvi-creations/storefront-api/pkg/response"
	"github.com/kashvi-creations/storefront-api/pkg/validation"
)

// EmailHandler sends transactional mail synchronously through the
// relay. No queue and no retry here: a relay failure is the request's
// failure.
type EmailHandler struct {
	Mail   *mailer.Mailgun
	Logger *logrus.Logger
	Cfg    *config.Config
}

func NewEmailHandler(mail *mailer.Mailgun, logger *logrus.Logger, cfg *config.Config) *EmailHandler {
	return &EmailHandler{Mail: mail, Logger: logger, Cfg: cfg}
}

type sendInvoiceRequest struct {
	UserEmail   string `json:"user_email" binding:"required,email"`
	InvoiceHTML string `json:"invoice_html" binding:"required"`
}

// SendInvoice POST /api/email/invoice
// Wraps the order invoice in the branded shell and delivers it to the
// customer.
func (h *EmailHandler) SendInvoice(c *gin.Context) {
	var req sendInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Missing required fields", validation.ToDetails(err))
		return
	}

	if h.Cfg != nil && !h.Cfg.MailSendEnabled {
		response.Success[any](c, http.StatusAccepted, gin.H{"sent": false, "disabled": true}, "email sending disabled", nil)
		return
	}

	html, err := tpl.RenderHTML(tpl.Invoice, tpl.EmailData{
		RecipientEmail: req.UserEmail,
		StoreName:      h.Cfg.StoreName,
		StoreAddress:   h.Cfg.StoreAddress,
		SupportEmail:   h.Cfg.SupportEmail,
		InvoiceHTML:    req.InvoiceHTML,
	})
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "template render failed", nil)
		return
	}

	if err := h.Mail.Send(c.Request.Context(), req.UserEmail, tpl.SubjectFor(tpl.Invoice, h.Cfg.StoreName), "", html); err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("email", req.UserEmail).Error("invoice email send failed")
		}
		response.Error[any](c, http.StatusInternalServerError, relayFailureMessage(err), nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Invoice sent successfully to your email!", nil)
}
