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

type AdminNoteHandler struct {
	noteService ports.NoteService
}

func NewAdminNoteHandler(noteService ports.NoteService) *AdminNoteHandler {
	return &AdminNoteHandler{noteService: noteService}
}

func (h *AdminNoteHandler) ListNotes(c *gin.Context) {
	lang := middleware.GetLang(c)
	page, perPage := pageParams(c)

	filter := domain.NoteFilter{
		Search:  c.Query("search"),
		Page:    page,
		PerPage: perPage,
	}
	if v := c.Query("user_id"); v != "" {
		filter.UserID = &v
	}

	notes, total, err := h.noteService.List(c.Request.Context(), filter)
	if err != nil {
		zap.L().Error("failed to list notes", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(mapper.ToNoteItems(notes), page, perPage, total))
}

func (h *AdminNoteHandler) DeleteNote(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.noteService.AdminDelete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgNoteNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete note", zap.String("note_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}
