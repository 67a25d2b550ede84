package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nisargamalap/gridle/internal/adapter/ai"
	"github.com/nisargamalap/gridle/internal/adapter/http/dto"
	"github.com/nisargamalap/gridle/internal/adapter/http/middleware"
	"github.com/nisargamalap/gridle/internal/core/domain"
	"github.com/nisargamalap/gridle/internal/core/ports"
	"github.com/nisargamalap/gridle/pkg/apierrors"
)

type AssistantHandler struct {
	assistantService ports.AssistantService
}

func NewAssistantHandler(assistantService ports.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

func (h *AssistantHandler) Chat(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	text, err := h.assistantService.Chat(c.Request.Context(), req.Message)
	if err != nil {
		h.writeAssistantError(c, lang, "assistant chat failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.ChatResponse{Text: text})
}

func (h *AssistantHandler) SummarizeNote(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	text, err := h.assistantService.SummarizeNote(c.Request.Context(), req.NoteID, middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgNoteNotFound, lang),
			)
			return
		}

		h.writeAssistantError(c, lang, "note summarization failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.ChatResponse{Text: text})
}

func (h *AssistantHandler) Translate(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	text, err := h.assistantService.Translate(c.Request.Context(), req.Text, req.Target)
	if err != nil {
		h.writeAssistantError(c, lang, "translation failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.ChatResponse{Text: text})
}

func (h *AssistantHandler) Spellcheck(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.SpellcheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	text, err := h.assistantService.Spellcheck(c.Request.Context(), req.Text)
	if err != nil {
		h.writeAssistantError(c, lang, "spellcheck failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.ChatResponse{Text: text})
}

func (h *AssistantHandler) writeAssistantError(c *gin.Context, lang, logMsg string, err error) {
	if errors.Is(err, ai.ErrNotConfigured) {
		c.JSON(
			http.StatusServiceUnavailable,
			apierrors.CreateError(http.StatusServiceUnavailable, apierrors.MsgAssistantDown, lang),
		)
		return
	}

	zap.L().Error(logMsg, zap.Error(err))
	c.JSON(
		http.StatusBadGateway,
		apierrors.CreateError(http.StatusBadGateway, apierrors.MsgAssistantDown, lang),
	)
}
