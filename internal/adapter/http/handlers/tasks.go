package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

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

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	in, err := validation.BuildCreateTaskInput(middleware.GetUserID(c), req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrGroupNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgGroupNotFound, lang),
			)
		case errors.Is(err, domain.ErrProjectNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
			)
		default:
			zap.L().Error("failed to create task", zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
			)
		}
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	filter, err := taskFilterFromQuery(c)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	tasks, err := h.taskService.ListForUser(c.Request.Context(), middleware.GetUserID(c), filter)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	task, err := h.taskService.Get(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get task", zap.String("task_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	in, ok := bindUpdateTaskInput(c, lang)
	if !ok {
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), c.Param("id"), middleware.GetUserID(c), in)
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

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.taskService.Delete(c.Request.Context(), c.Param("id"), middleware.GetUserID(c)); err != nil {
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

// bindUpdateTaskInput decodes the body twice: once into the typed request and
// once into a raw field map, so a field sent as null can be told apart from a
// field omitted entirely.
func bindUpdateTaskInput(c *gin.Context, lang string) (domain.UpdateTaskInput, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return domain.UpdateTaskInput{}, false
	}

	var req dto.UpdateTaskRequest
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return domain.UpdateTaskInput{}, false
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return domain.UpdateTaskInput{}, false
	}

	in, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return domain.UpdateTaskInput{}, false
	}
	return in, true
}

func taskFilterFromQuery(c *gin.Context) (domain.TaskFilter, error) {
	var filter domain.TaskFilter

	if v := c.Query("status"); v != "" {
		status, err := domain.ParseTaskStatus(v)
		if err != nil {
			return domain.TaskFilter{}, err
		}
		filter.Status = &status
	}
	if v := c.Query("priority"); v != "" {
		priority, err := domain.ParseTaskPriority(v)
		if err != nil {
			return domain.TaskFilter{}, err
		}
		filter.Priority = &priority
	}
	if v := c.Query("archived"); v != "" {
		archived, err := strconv.ParseBool(v)
		if err != nil {
			return domain.TaskFilter{}, err
		}
		filter.Archived = &archived
	}
	if v := c.Query("group_id"); v != "" {
		filter.GroupID = &v
	}
	filter.Search = c.Query("search")

	return filter, nil
}
