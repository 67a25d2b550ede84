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

// AdminUserHandler is the back-office user management surface. Every route is
// behind the admin role gate.
type AdminUserHandler struct {
	userService ports.UserService
}

func NewAdminUserHandler(userService ports.UserService) *AdminUserHandler {
	return &AdminUserHandler{userService: userService}
}

func (h *AdminUserHandler) ListUsers(c *gin.Context) {
	lang := middleware.GetLang(c)
	page, perPage := pageParams(c)

	users, total, err := h.userService.List(c.Request.Context(), c.Query("search"), page, perPage)
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(mapper.ToUserItems(users), page, perPage, total))
}

func (h *AdminUserHandler) GetUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	user, err := h.userService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get user", zap.String("user_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

func (h *AdminUserHandler) UpdateUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	in := domain.UpdateUserInput{Name: req.Name, IsActive: req.IsActive}
	if req.Role != nil {
		role := domain.UserRole(*req.Role)
		in.Role = &role
	}

	user, err := h.userService.AdminUpdate(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update user", zap.String("user_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

// DeleteUser refuses while the target still owns groups; ownership has to be
// transferred or the groups deleted first.
func (h *AdminUserHandler) DeleteUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.userService.AdminDelete(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
		case errors.Is(err, domain.ErrUserOwnsGroups):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgUserOwnsGroups, lang),
			)
		default:
			zap.L().Error("failed to delete user", zap.String("user_id", c.Param("id")), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
			)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminUserHandler) ResetUserPassword(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.AdminResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	if err := h.userService.AdminResetPassword(c.Request.Context(), c.Param("id"), req.Password); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to reset user password", zap.String("user_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminUserHandler) GetUserActivity(c *gin.Context) {
	lang := middleware.GetLang(c)

	activity, err := h.userService.Activity(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to load user activity", zap.String("user_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserActivity(activity))
}
