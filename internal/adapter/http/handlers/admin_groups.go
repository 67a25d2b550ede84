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

// AdminGroupHandler manages any group regardless of membership, including
// roster surgery and ownership transfer.
type AdminGroupHandler struct {
	groupService ports.GroupService
}

func NewAdminGroupHandler(groupService ports.GroupService) *AdminGroupHandler {
	return &AdminGroupHandler{groupService: groupService}
}

func (h *AdminGroupHandler) ListGroups(c *gin.Context) {
	lang := middleware.GetLang(c)
	page, perPage := pageParams(c)

	groups, total, err := h.groupService.List(c.Request.Context(), c.Query("search"), page, perPage)
	if err != nil {
		zap.L().Error("failed to list groups", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(mapper.ToGroupItems(groups), page, perPage, total))
}

func (h *AdminGroupHandler) UpdateGroup(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	group, err := h.groupService.AdminUpdate(c.Request.Context(), c.Param("id"), domain.UpdateGroupInput{
		Name:        req.Name,
		Description: req.Description,
		IsPrivate:   req.IsPrivate,
	})
	if err != nil {
		h.writeError(c, lang, "failed to update group", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToGroupItem(group))
}

func (h *AdminGroupHandler) DeleteGroup(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.groupService.AdminDelete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, lang, "failed to delete group", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminGroupHandler) AddMember(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	group, err := h.groupService.AddMember(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyMember) {
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgAlreadyMember, lang),
			)
			return
		}

		h.writeError(c, lang, "failed to add group member", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToGroupItem(group))
}

func (h *AdminGroupHandler) RemoveMember(c *gin.Context) {
	lang := middleware.GetLang(c)

	group, err := h.groupService.RemoveMember(c.Request.Context(), c.Param("id"), c.Param("userId"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOwnerRemoval):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgCannotRemoveOwner, lang),
			)
		case errors.Is(err, domain.ErrNotAMember):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgNotAMember, lang),
			)
		default:
			h.writeError(c, lang, "failed to remove group member", err)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToGroupItem(group))
}

func (h *AdminGroupHandler) TransferOwnership(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.TransferOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	group, err := h.groupService.TransferOwnership(c.Request.Context(), c.Param("id"), req.NewOwnerID)
	if err != nil {
		h.writeError(c, lang, "failed to transfer group ownership", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToGroupItem(group))
}

func (h *AdminGroupHandler) writeError(c *gin.Context, lang, logMsg string, err error) {
	switch {
	case errors.Is(err, domain.ErrGroupNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgGroupNotFound, lang),
		)
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
		)
	case errors.Is(err, domain.ErrNotAMember):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgNotAMember, lang),
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
