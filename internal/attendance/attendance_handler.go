package attendance

import (
	"net/http"
	"strconv"

	attendanceerrors "go-hrms/internal/attendance/errors"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) MarkPresent(c *gin.Context) {
	var req MarkPresentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http mark present validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.MarkPresent(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MarkAbsent(c *gin.Context) {
	var req MarkAbsentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http mark absent validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.MarkAbsent(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// GetAll lists the log, optionally filtered by employee_id or date.
func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		resp []AttendanceResponse
		err  error
	)
	switch {
	case c.Query("employee_id") != "":
		employeeID, convErr := strconv.Atoi(c.Query("employee_id"))
		if convErr != nil {
			h.writeServiceError(c, attendanceerrors.ErrInvalidEmployeeID)
			return
		}
		resp, err = h.service.GetByEmployee(ctx, employeeID)
	case c.Query("date") != "":
		resp, err = h.service.GetByDate(ctx, c.Query("date"))
	default:
		resp, err = h.service.GetAll(ctx)
	}
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) Stats(c *gin.Context) {
	employeeID := 0
	if eid := c.Query("employee_id"); eid != "" {
		var err error
		employeeID, err = strconv.Atoi(eid)
		if err != nil {
			h.writeServiceError(c, attendanceerrors.ErrInvalidEmployeeID)
			return
		}
	}

	resp, err := h.service.Stats(
		c.Request.Context(),
		employeeID,
		c.Query("start_date"),
		c.Query("end_date"),
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
