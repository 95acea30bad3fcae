package handler

import (
	"net/http"
	"strings"

	"federation-payments/internal/adapter/http/dto"
	"federation-payments/internal/core/ports"
	"federation-payments/pkg/apperror"
	"federation-payments/pkg/response"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the unauthenticated payer pages behind public links.
type PublicHandler struct {
	linkSvc  ports.LinkService
	cobroSvc ports.CobroService
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(linkSvc ports.LinkService, cobroSvc ports.CobroService) *PublicHandler {
	return &PublicHandler{linkSvc: linkSvc, cobroSvc: cobroSvc}
}

// GetCobro handles GET /pagar/:slug.
func (h *PublicHandler) GetCobro(c *gin.Context) {
	slug := c.Param("slug")

	link, cobro, err := h.linkSvc.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		response.Error(c, publicError(err))
		return
	}
	h.linkSvc.RegisterAccess(c.Request.Context(), link.Slug)

	resp := dto.PublicCobroResponse{
		Slug:        link.Slug,
		Concept:     cobro.Concept,
		Amount:      cobro.Amount,
		DueDate:     cobro.DueDate,
		State:       cobro.State,
		CanCheckout: !cobro.IsTerminal(),
	}
	if resp.CanCheckout {
		resp.CheckoutURL = "/pagar/" + link.Slug + "/checkout"
	}
	response.OK(c, resp)
}

// Checkout handles POST /pagar/:slug/checkout. Browsers submitting the
// payer form are redirected straight to the provider.
func (h *PublicHandler) Checkout(c *gin.Context) {
	_, cobro, err := h.linkSvc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, publicError(err))
		return
	}
	if cobro.IsTerminal() {
		response.Error(c, apperror.ErrCobroClosed(string(cobro.State)))
		return
	}

	intent, err := h.cobroSvc.CreatePaymentIntent(c.Request.Context(), cobro.ID)
	if err != nil {
		response.Error(c, publicError(err))
		return
	}

	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.Redirect(http.StatusSeeOther, intent.RedirectURL)
		return
	}
	response.OK(c, dto.CheckoutResponse{PreferenceID: intent.PreferenceID, RedirectURL: intent.RedirectURL})
}
