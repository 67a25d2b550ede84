package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nisargamalap/gridle/internal/adapter/http/dto"
	"github.com/nisargamalap/gridle/internal/adapter/http/mapper"
	"github.com/nisargamalap/gridle/internal/adapter/http/middleware"
	"github.com/nisargamalap/gridle/internal/adapter/http/validation"
	"github.com/nisargamalap/gridle/internal/core/domain"
	"github.com/nisargamalap/gridle/internal/core/ports"
	"github.com/nisargamalap/gridle/pkg/apierrors"
)

type AdminTaskHandler struct {
	taskService ports.TaskService
}

func NewAdminTaskHandler(taskService ports.TaskService) *AdminTaskHandler {
	return &AdminTaskHandler{taskService: taskService}
}

func (h *AdminTaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	filter, err := taskFilterFromQuery(c)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}
	if v := c.Query("user_id"); v != "" {
		filter.UserID = &v
	}
	filter.Page, filter.PerPage = pageParams(c)

	tasks, total, err := h.taskService.List(c.Request.Context(), filter)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(mapper.ToTaskItems(tasks), filter.Page, filter.PerPage, total))
}

func (h *AdminTaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	in, ok := bindUpdateTaskInput(c, lang)
	if !ok {
		return
	}

	task, err := h.taskService.AdminUpdate(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update task", zap.String("task_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *AdminTaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.taskService.AdminDelete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete task", zap.String("task_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

// BulkTasks applies a single action across many tasks and reports how many
// rows it touched.
func (h *AdminTaskHandler) BulkTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.BulkTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	in, err := validation.BuildBulkTaskInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	affected, err := h.taskService.Bulk(c.Request.Context(), in)
	if err != nil {
		zap.L().Error("failed to bulk-update tasks", zap.String("action", string(in.Action)), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.BulkTaskResponse{Affected: affected})
}
