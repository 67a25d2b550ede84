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

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), domain.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgEmailTaken, lang),
			)
			return
		}

		zap.L().Error("failed to register user", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{Token: token, User: mapper.ToUserItem(user)})
}

func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCreds, lang),
			)
		case errors.Is(err, domain.ErrAccountDisabled):
			c.JSON(
				http.StatusForbidden,
				apierrors.CreateError(http.StatusForbidden, apierrors.MsgAccountDisabled, lang),
			)
		default:
			zap.L().Error("failed to log user in", zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: mapper.ToUserItem(user)})
}

// RequestPasswordReset always answers 202: whether the address exists is not
// something this endpoint reveals.
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	if err := h.authService.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		zap.L().Error("failed to request password reset", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.Status(http.StatusAccepted)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.PasswordResetConfirm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		if errors.Is(err, domain.ErrResetTokenInvalid) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgResetTokenInvalid, lang),
			)
			return
		}

		zap.L().Error("failed to reset password", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}
