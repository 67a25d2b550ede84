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

// UserHandler serves the signed-in user's own profile surface.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	lang := middleware.GetLang(c)

	user, err := h.userService.Get(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to load profile", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), middleware.GetUserID(c), domain.UpdateUserInput{
		Name:  req.Name,
		Image: req.Image,
	})
	if err != nil {
		zap.L().Error("failed to update profile", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

func (h *UserHandler) UpdatePreferences(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	user, err := h.userService.UpdatePreferences(c.Request.Context(), middleware.GetUserID(c), domain.UpdatePreferencesInput{
		Theme:       req.Theme,
		NotifyEmail: req.NotifyEmail,
		NotifyPush:  req.NotifyPush,
	})
	if err != nil {
		zap.L().Error("failed to update preferences", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	err := h.userService.ChangePassword(c.Request.Context(), middleware.GetUserID(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCreds, lang),
			)
			return
		}

		zap.L().Error("failed to change password", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}
