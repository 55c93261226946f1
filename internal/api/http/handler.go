package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	app "plant-segmentation/internal/application"
	"plant-segmentation/internal/domain/entity"
)

// Handler HTTP-обработчики сегментации
type Handler struct {
	service      *app.SegmentationService
	logger       *zap.Logger
	version      string
	maxBodyBytes int64
}

func NewHandler(service *app.SegmentationService, logger *zap.Logger, version string, maxBodyBytes int64) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		service:      service,
		logger:       logger,
		version:      version,
		maxBodyBytes: maxBodyBytes,
	}
}

// Ping обрабатывает GET /v1/segment
func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": "ok"})
}

// Segment обрабатывает POST /v1/segment
func (h *Handler) Segment(c *gin.Context) {
	if h.maxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	}

	var payload SegmentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		h.logger.Warn("invalid payload", zap.Error(err))
		h.fail(c, status, ErrorDescription{
			Raised:   "ValidationError",
			RaisedOn: raisedOnAPI,
			Message:  err.Error(),
		})
		return
	}

	result, err := h.service.SegmentBase64(c.Request.Context(), app.SegmentRequest{
		Base64: *payload.Base64,
		BBox:   payload.BBox,
	})
	if err != nil {
		h.fail(c, statusFor(err), describe(err))
		return
	}

	c.JSON(http.StatusOK, successResponse(result, h.version))
}

// Health обрабатывает GET /health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
	})
}

// Version обрабатывает GET /version
func (h *Handler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": h.version})
}

func (h *Handler) fail(c *gin.Context, status int, desc ErrorDescription) {
	desc.Code = strconv.Itoa(status)
	c.JSON(status, failedResponse(desc, h.version))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrBusy):
		return http.StatusServiceUnavailable
	case errors.Is(err, entity.ErrTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadRequest
	}
}

func describe(err error) ErrorDescription {
	desc := ErrorDescription{
		Raised:   entity.ErrorKind(err),
		RaisedOn: raisedOnAPI,
		Message:  err.Error(),
	}
	var perr *entity.PipelineError
	if errors.As(err, &perr) {
		desc.RaisedOn = string(perr.Stage)
	}
	return desc
}
