package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nisargamalap/gridle/internal/adapter/http/dto"
	"github.com/nisargamalap/gridle/internal/adapter/http/mapper"
	"github.com/nisargamalap/gridle/internal/adapter/http/middleware"
	"github.com/nisargamalap/gridle/internal/core/domain"
	"github.com/nisargamalap/gridle/internal/core/ports"
	"github.com/nisargamalap/gridle/pkg/apierrors"
)

type ProjectHandler struct {
	projectService ports.ProjectService
}

func NewProjectHandler(projectService ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	in := domain.CreateProjectInput{
		UserID: middleware.GetUserID(c),
		Name:   req.Name,
	}
	if req.Description != nil {
		in.Description = *req.Description
	}
	if req.Color != nil {
		in.Color = *req.Color
	}
	if req.Status != nil {
		status, err := domain.ParseProjectStatus(*req.Status)
		if err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
			)
			return
		}
		in.Status = status
	}
	if req.StartDate != nil {
		start, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
			)
			return
		}
		in.StartDate = start
	}
	if req.EndDate != nil {
		end, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
			)
			return
		}
		in.EndDate = &end
	}

	project, err := h.projectService.Create(c.Request.Context(), in)
	if err != nil {
		zap.L().Error("failed to create project", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	lang := middleware.GetLang(c)

	projects, err := h.projectService.ListForUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		zap.L().Error("failed to list projects", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItems(projects))
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	in := domain.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	}
	if req.Status != nil {
		status, err := domain.ParseProjectStatus(*req.Status)
		if err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
			)
			return
		}
		in.Status = &status
	}
	if req.EndDate != nil {
		end, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
			)
			return
		}
		in.EndDate = &end
		in.EndDateSet = true
	}

	project, err := h.projectService.Update(c.Request.Context(), c.Param("id"), middleware.GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update project", zap.String("project_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.projectService.Delete(c.Request.Context(), c.Param("id"), middleware.GetUserID(c)); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete project", zap.String("project_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}
