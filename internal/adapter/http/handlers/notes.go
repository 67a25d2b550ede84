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

type NoteHandler struct {
	noteService ports.NoteService
}

func NewNoteHandler(noteService ports.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

func (h *NoteHandler) CreateNote(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	note, err := h.noteService.Create(c.Request.Context(), domain.CreateNoteInput{
		UserID:  middleware.GetUserID(c),
		TaskID:  req.TaskID,
		GroupID: req.GroupID,
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
		case errors.Is(err, domain.ErrGroupNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgGroupNotFound, lang),
			)
		default:
			zap.L().Error("failed to create note", zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
			)
		}
		return
	}

	c.JSON(http.StatusCreated, mapper.ToNoteItem(note))
}

func (h *NoteHandler) ListNotes(c *gin.Context) {
	lang := middleware.GetLang(c)

	notes, err := h.noteService.ListForUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		zap.L().Error("failed to list notes", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToNoteItems(notes))
}

func (h *NoteHandler) GetNote(c *gin.Context) {
	lang := middleware.GetLang(c)

	note, err := h.noteService.Get(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgNoteNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get note", zap.String("note_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToNoteItem(note))
}

func (h *NoteHandler) UpdateNote(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	note, err := h.noteService.Update(c.Request.Context(), c.Param("id"), middleware.GetUserID(c), domain.UpdateNoteInput{
		Title:      req.Title,
		Content:    req.Content,
		Tags:       req.Tags,
		TagsSet:    req.Tags != nil,
		IsArchived: req.IsArchived,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgNoteNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update note", zap.String("note_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToNoteItem(note))
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.noteService.Delete(c.Request.Context(), c.Param("id"), middleware.GetUserID(c)); err != nil {
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
