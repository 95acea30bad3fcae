package handler

import (
	"context"
	"strconv"
	"time"

	"federation-payments/internal/core/ports"
	"federation-payments/pkg/apperror"
	"federation-payments/pkg/logger"
	"federation-payments/pkg/response"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	eventsWriteTimeout = 5 * time.Second
	eventsPingInterval = 30 * time.Second
	eventsBuffer       = 64
)

// EventsHandler streams state change events to admin UIs over a websocket.
type EventsHandler struct {
	feed           ports.EventFeed
	originPatterns []string
	pingInterval   time.Duration
	log            zerolog.Logger
}

// NewEventsHandler creates a new EventsHandler. originPatterns lists the
// extra hosts allowed to open the stream; same-origin is always allowed.
func NewEventsHandler(feed ports.EventFeed, originPatterns []string, log zerolog.Logger) *EventsHandler {
	return &EventsHandler{
		feed:           feed,
		originPatterns: originPatterns,
		pingInterval:   eventsPingInterval,
		log:            logger.Component(log, "events"),
	}
}

// Stream handles GET /api/v1/events/ws. An optional cobro_id query
// parameter restricts the stream to one cobro. Delivery is at-least-once;
// a client that falls behind is disconnected with StatusTryAgainLater and
// must reconnect and re-read the cobros it shows.
func (h *EventsHandler) Stream(c *gin.Context) {
	var cobroID int64
	if raw := c.Query("cobro_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.Error(c, apperror.Validation("cobro_id must be a positive integer"))
			return
		}
		cobroID = id
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	})
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket accept failed")
		return
	}
	defer conn.CloseNow()

	sub := h.feed.Subscribe(eventsBuffer)
	defer sub.Close()

	// Admin clients never send; CloseRead handles control frames and
	// cancels ctx when the peer goes away.
	ctx := conn.CloseRead(c.Request.Context())

	ping := time.NewTicker(h.pingInterval)
	defer ping.Stop()

	h.log.Debug().Int64("cobro_id", cobroID).Msg("event stream opened")
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub.Events():
			if !ok {
				_ = conn.Close(websocket.StatusTryAgainLater, "lagging subscriber")
				return
			}
			if cobroID != 0 && ev.CobroID != cobroID {
				continue
			}
			if err := writeJSON(ctx, conn, ev); err != nil {
				h.log.Debug().Err(err).Msg("event stream write failed")
				return
			}
		case <-ping.C:
			pctx, cancel := context.WithTimeout(ctx, eventsWriteTimeout)
			err := conn.Ping(pctx)
			cancel()
			if err != nil {
				_ = conn.Close(websocket.StatusGoingAway, "heartbeat failed")
				return
			}
		}
	}
}

func writeJSON(parent context.Context, conn *websocket.Conn, v any) error {
	ctx, cancel := context.WithTimeout(parent, eventsWriteTimeout)
	defer cancel()
	return wsjson.Write(ctx, conn, v)
}
