package rest

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"
	"tx-lab/domain"
	"tx-lab/errors"
	"tx-lab/observability"
	"tx-lab/services"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// SubmitRequest is the POST body. A missing or null msg both decode to nil.
type SubmitRequest struct {
	Msg *string `json:"msg"`
}

type MessageResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageHandler struct {
	log        *slog.Logger
	service    services.IMessageService
	monitoring *observability.MonitoringManager
}

func NewMessageHandler(log *slog.Logger, service services.IMessageService, monitoring *observability.MonitoringManager) *MessageHandler {
	return &MessageHandler{log: log, service: service, monitoring: monitoring}
}

// Submit handles POST / with a body like {"msg": "hello"}.
func (h *MessageHandler) Submit(c *gin.Context) {
	var request SubmitRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	message, err := h.service.Submit(ctx, services.Payload{services.MsgKey: request.Msg}).Await(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toMessageResponse(message))
}

// List handles GET / and always answers with a JSON array.
func (h *MessageHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	messages, err := h.service.List(ctx).Await(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, lo.Map(messages, func(message domain.Message, _ int) MessageResponse {
		return toMessageResponse(message)
	}))
}

func (h *MessageHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.monitoring.GetLatest())
}

func (h *MessageHandler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("Request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrInvalidInput):
		return http.StatusBadRequest
	case stderrors.Is(err, errors.ErrExecutorStopped),
		stderrors.Is(err, context.Canceled),
		stderrors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func toMessageResponse(message domain.Message) MessageResponse {
	id, _ := message.ID()
	return MessageResponse{ID: id.String(), Message: message.Text()}
}
