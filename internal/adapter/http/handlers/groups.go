package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nisargamalap/gridle/internal/adapter/http/dto"
	"github.com/nisargamalap/gridle/internal/adapter/http/mapper"
	"github.com/nisargamalap/gridle/internal/adapter/http/middleware"
	"github.com/nisargamalap/gridle/internal/core/domain"
	"github.com/nisargamalap/gridle/internal/core/ports"
	"github.com/nisargamalap/gridle/pkg/apierrors"
)

type GroupHandler struct {
	groupService ports.GroupService
	taskService  ports.TaskService
}

func NewGroupHandler(groupService ports.GroupService, taskService ports.TaskService) *GroupHandler {
	return &GroupHandler{groupService: groupService, taskService: taskService}
}

func (h *GroupHandler) CreateGroup(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	group, err := h.groupService.Create(c.Request.Context(), domain.CreateGroupInput{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     middleware.GetUserID(c),
		IsPrivate:   req.IsPrivate,
	})
	if err != nil {
		zap.L().Error("failed to create group", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToGroupItem(group))
}

func (h *GroupHandler) ListGroups(c *gin.Context) {
	lang := middleware.GetLang(c)

	groups, err := h.groupService.ListForUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		zap.L().Error("failed to list groups", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToGroupItems(groups))
}

func (h *GroupHandler) GetGroup(c *gin.Context) {
	lang := middleware.GetLang(c)

	group, err := h.groupService.Get(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrGroupNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgGroupNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get group", zap.String("group_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToGroupItem(group))
}

func (h *GroupHandler) ListMembers(c *gin.Context) {
	lang := middleware.GetLang(c)

	members, err := h.groupService.Members(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrGroupNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgGroupNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to list group members", zap.String("group_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToMemberItems(members))
}

// JoinGroup enrolls the caller by join code. A second join with the same code
// reports the conflict rather than silently succeeding.
func (h *GroupHandler) JoinGroup(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.JoinGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	group, err := h.groupService.JoinByCode(c.Request.Context(), req.JoinCode, middleware.GetUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrGroupNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgInvalidJoinCode, lang),
			)
		case errors.Is(err, domain.ErrAlreadyMember):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgAlreadyMember, lang),
			)
		case errors.Is(err, domain.ErrVersionConflict):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgGroupConflict, lang),
			)
		default:
			zap.L().Error("failed to join group", zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToGroupItem(group))
}

func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	group, err := h.groupService.Update(c.Request.Context(), c.Param("id"), middleware.GetUserID(c), domain.UpdateGroupInput{
		Name:        req.Name,
		Description: req.Description,
		IsPrivate:   req.IsPrivate,
	})
	if err != nil {
		h.writeGroupMutationError(c, lang, "failed to update group", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToGroupItem(group))
}

func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.groupService.Delete(c.Request.Context(), c.Param("id"), middleware.GetUserID(c)); err != nil {
		h.writeGroupMutationError(c, lang, "failed to delete group", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *GroupHandler) ListGroupTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	tasks, err := h.taskService.ListForGroup(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrGroupNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgGroupNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to list group tasks", zap.String("group_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *GroupHandler) writeGroupMutationError(c *gin.Context, lang, logMsg string, err error) {
	switch {
	case errors.Is(err, domain.ErrGroupNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgGroupNotFound, lang),
		)
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(
			http.StatusForbidden,
			apierrors.CreateError(http.StatusForbidden, apierrors.MsgForbidden, lang),
		)
	case errors.Is(err, domain.ErrVersionConflict):
		c.JSON(
			http.StatusConflict,
			apierrors.CreateError(http.StatusConflict, apierrors.MsgGroupConflict, lang),
		)
	default:
		zap.L().Error(logMsg, zap.String("group_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
	}
}
