package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"federation-payments/internal/adapter/http/dto"
	"federation-payments/internal/core/domain"
	"federation-payments/internal/core/ports"
	"federation-payments/pkg/apperror"
	"federation-payments/pkg/logger"
	"federation-payments/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Webhook URL aliases. MercadoPago has been configured over the years with
// each of these; all of them reach the same handler.
const (
	WebhookPathPrimary  = "/api/webhooks/mercadopago"
	WebhookPathNoPrefix = "/webhooks/mercadopago"
	WebhookPathRoot     = "/"
	webhookPathDupSlash = "//api/webhooks/mercadopago"
	webhookAliasOther   = "other"

	headerSignature     = "x-signature"
	headerProviderReqID = "x-request-id"
	serviceName         = "federation-payments"
)

// WebhookMetrics counts provider callbacks.
type WebhookMetrics interface {
	ObserveWebhook(path, result string)
}

// WebhookHandler turns provider callbacks into reconciliations.
type WebhookHandler struct {
	reconciler ports.Reconciler
	verifier   ports.WebhookVerifier
	metrics    WebhookMetrics
	log        zerolog.Logger
}

// NewWebhookHandler creates a new WebhookHandler. verifier and metrics may be nil.
func NewWebhookHandler(reconciler ports.Reconciler, verifier ports.WebhookVerifier, metrics WebhookMetrics, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{
		reconciler: reconciler,
		verifier:   verifier,
		metrics:    metrics,
		log:        logger.Component(log, "webhook"),
	}
}

// Handle serves every webhook alias, GET and POST.
func (h *WebhookHandler) Handle(c *gin.Context) {
	alias := webhookAlias(c.Request.URL.Path)
	isRoot := c.FullPath() == WebhookPathRoot

	n, found, err := parseNotification(c, isRoot)
	if err != nil {
		h.observe(alias, "malformed")
		h.log.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("malformed notification")
		response.Error(c, err)
		return
	}
	if !found {
		if isRoot {
			c.JSON(http.StatusOK, gin.H{"service": serviceName, "status": "ok"})
			return
		}
		h.observe(alias, "malformed")
		response.Error(c, apperror.ErrMalformedNotification("no notification parameters"))
		return
	}
	n.Path = c.Request.URL.Path

	if h.verifier != nil && h.verifier.Enabled() {
		if err := h.verifier.Verify(n.Reference, c.GetHeader(headerProviderReqID), c.GetHeader(headerSignature)); err != nil {
			h.observe(alias, "bad_signature")
			h.log.Warn().Err(err).Str("reference", n.Reference).Msg("rejected webhook signature")
			response.Error(c, apperror.ErrInvalidWebhookSignature())
			return
		}
	}

	result, err := h.reconciler.HandleNotification(c.Request.Context(), n)
	if err != nil {
		// The provider only needs to know the callback arrived; the monitor
		// picks up anything a failed lookup missed.
		h.observe(alias, "error")
		h.log.Error().Err(err).
			Str("reference", n.Reference).
			Str("kind", n.Kind).
			Str("shape", string(n.Shape)).
			Msg("notification not reconciled")
		response.Ack(c, "error")
		return
	}

	h.observe(alias, string(result.Outcome))
	h.log.Info().
		Str("reference", n.Reference).
		Str("kind", n.Kind).
		Str("path", n.Path).
		Str("outcome", string(result.Outcome)).
		Int64("cobro_id", result.CobroID).
		Msg("notification handled")
	response.Ack(c, string(result.Outcome))
}

func (h *WebhookHandler) observe(alias, result string) {
	if h.metrics != nil {
		h.metrics.ObserveWebhook(alias, result)
	}
}

// parseNotification extracts a notification from the query string or, for
// the data.id + type shape, from the JSON body. found is false when neither
// shape is present at all. On the root alias a body that is not a
// notification counts as absent: load balancers probe "/" with anything.
func parseNotification(c *gin.Context, isRoot bool) (domain.Notification, bool, error) {
	dataID, typ := c.Query("data.id"), c.Query("type")
	id, topic := c.Query("id"), c.Query("topic")

	if dataID == "" && typ == "" && id == "" && topic == "" {
		body, err := readWebhookBody(c)
		if err != nil {
			if isRoot {
				return domain.Notification{}, false, nil
			}
			return domain.Notification{}, false, err
		}
		if body != nil {
			dataID, typ = string(body.Data.ID), body.Type
		}
	}

	switch {
	case dataID != "" || typ != "":
		if dataID == "" || typ == "" {
			return domain.Notification{}, false, apperror.ErrMalformedNotification("data.id and type are both required")
		}
		return domain.Notification{Reference: dataID, Kind: typ, Shape: domain.ShapeDataIDType}, true, nil
	case id != "" || topic != "":
		if id == "" || topic == "" {
			return domain.Notification{}, false, apperror.ErrMalformedNotification("id and topic are both required")
		}
		return domain.Notification{Reference: id, Kind: topic, Shape: domain.ShapeIDTopic}, true, nil
	}
	return domain.Notification{}, false, nil
}

// readWebhookBody decodes a JSON body if there is one. An empty body is not
// an error; an unreadable or non-JSON body on a POST is.
func readWebhookBody(c *gin.Context) (*dto.WebhookBody, error) {
	if c.Request.Method != http.MethodPost || c.Request.Body == nil {
		return nil, nil
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, apperror.ErrPayloadTooLarge()
		}
		return nil, apperror.ErrMalformedNotification("unreadable body")
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}

	var body dto.WebhookBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, apperror.ErrMalformedNotification("body is not a notification")
	}
	return &body, nil
}

// webhookAlias bounds the metric label to the known aliases.
func webhookAlias(path string) string {
	switch path {
	case WebhookPathPrimary, WebhookPathNoPrefix, WebhookPathRoot, webhookPathDupSlash:
		return path
	}
	return webhookAliasOther
}
