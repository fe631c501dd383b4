package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"parkplan/internal/delivery/http/response"
	"parkplan/internal/infra/stream"
	"parkplan/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const heartbeatInterval = 30 * time.Second

// StreamHandlerParams holds dependencies for StreamHandler, injected by Fx.
type StreamHandlerParams struct {
	fx.In

	Hub         *stream.Hub
	VacationUC  usecase.VacationUsecase
	ReferenceUC usecase.ReferenceUsecase
	Logger      *slog.Logger
}

// StreamHandler serves the live change feeds over server-sent events. The
// subscription is admitted through the same read policy as a plain GET, and
// the hub re-checks the policy on every delivery.
type StreamHandler struct {
	hub         *stream.Hub
	vacationUC  usecase.VacationUsecase
	referenceUC usecase.ReferenceUsecase
	logger      *slog.Logger
}

// NewStreamHandler is the constructor for StreamHandler
func NewStreamHandler(params StreamHandlerParams) *StreamHandler {
	return &StreamHandler{
		hub:         params.Hub,
		vacationUC:  params.VacationUC,
		referenceUC: params.ReferenceUC,
		logger:      params.Logger,
	}
}

// SubscribeVacation opens the change feed of one vacation
func (h *StreamHandler) SubscribeVacation(c echo.Context) error {
	vacationID := c.Param("id")

	if _, err := h.vacationUC.GetVacation(c.Request().Context(), identity(c), vacationID); err != nil {
		return handleAppError(c, err)
	}

	return h.serve(c, stream.VacationTopic(vacationID))
}

// SubscribePark opens the wait-time feed of one park
func (h *StreamHandler) SubscribePark(c echo.Context) error {
	parkID := c.Param("id")

	if _, err := h.referenceUC.GetPark(c.Request().Context(), identity(c), parkID); err != nil {
		return handleAppError(c, err)
	}

	return h.serve(c, stream.ParkTopic(parkID))
}

// serve pumps hub events to the client until it disconnects.
func (h *StreamHandler) serve(c echo.Context, topic string) error {
	res := c.Response()
	flusher, ok := res.Writer.(http.Flusher)
	if !ok {
		return response.InternalServerError(c, "STREAMING_UNSUPPORTED", "Streaming is not supported")
	}

	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	flusher.Flush()

	client := h.hub.Register(topic, identity(c))
	defer h.hub.Unregister(client)

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil

		case <-client.Done():
			return nil

		case event := <-client.Send:
			if err := writeEvent(res, event); err != nil {
				return nil
			}
			flusher.Flush()

		case <-heartbeat.C:
			if _, err := fmt.Fprint(res, ": keep-alive\n\n"); err != nil {
				return nil
			}
			flusher.Flush()
		}
	}
}

func writeEvent(res *echo.Response, event *stream.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(res, "event: %s\ndata: %s\n\n", event.Collection, payload)

	return err
}
