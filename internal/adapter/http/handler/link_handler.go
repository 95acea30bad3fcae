package handler

import (
	"federation-payments/internal/adapter/http/dto"
	"federation-payments/internal/core/ports"
	"federation-payments/pkg/apperror"
	"federation-payments/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LinkHandler handles public link administration.
type LinkHandler struct {
	linkSvc ports.LinkService
}

// NewLinkHandler creates a new LinkHandler.
func NewLinkHandler(linkSvc ports.LinkService) *LinkHandler {
	return &LinkHandler{linkSvc: linkSvc}
}

// Generate handles POST /api/v1/cobros/:id/links.
func (h *LinkHandler) Generate(c *gin.Context) {
	cobroID, ok := cobroIDParam(c)
	if !ok {
		return
	}

	var req dto.GenerateLinkRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
	}
	dto.SanitizeStruct(&req)

	link, err := h.linkSvc.GenerateLink(c.Request.Context(), cobroID, req.Concept, req.ExpiresAt)
	if err != nil {
		response.Error(c, adminError(err, "Cobro"))
		return
	}
	response.Created(c, link)
}

// List handles GET /api/v1/cobros/:id/links.
func (h *LinkHandler) List(c *gin.Context) {
	cobroID, ok := cobroIDParam(c)
	if !ok {
		return
	}

	links, err := h.linkSvc.ListByCobro(c.Request.Context(), cobroID)
	if err != nil {
		response.Error(c, adminError(err, "Cobro"))
		return
	}
	response.OK(c, links)
}

// Toggle handles PATCH /api/v1/links/:id.
func (h *LinkHandler) Toggle(c *gin.Context) {
	id, ok := linkIDParam(c)
	if !ok {
		return
	}

	var req dto.ToggleLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	link, err := h.linkSvc.Toggle(c.Request.Context(), id, *req.Active)
	if err != nil {
		response.Error(c, adminError(err, "Link"))
		return
	}
	response.OK(c, link)
}

// Delete handles DELETE /api/v1/links/:id.
func (h *LinkHandler) Delete(c *gin.Context) {
	id, ok := linkIDParam(c)
	if !ok {
		return
	}

	if err := h.linkSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, adminError(err, "Link"))
		return
	}
	response.OK(c, gin.H{"deleted": true})
}

func linkIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("link id must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}
