package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nisargamalap/gridle/internal/adapter/http/mapper"
	"github.com/nisargamalap/gridle/internal/adapter/http/middleware"
	"github.com/nisargamalap/gridle/internal/core/ports"
	"github.com/nisargamalap/gridle/pkg/apierrors"
)

type AdminAnalyticsHandler struct {
	analyticsService ports.AnalyticsService
}

func NewAdminAnalyticsHandler(analyticsService ports.AnalyticsService) *AdminAnalyticsHandler {
	return &AdminAnalyticsHandler{analyticsService: analyticsService}
}

func (h *AdminAnalyticsHandler) Overview(c *gin.Context) {
	lang := middleware.GetLang(c)

	overview, err := h.analyticsService.Overview(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to build analytics overview", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToAnalyticsOverview(overview))
}
