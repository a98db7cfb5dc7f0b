package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kasparro/content-engine/internal/domain"
	"github.com/kasparro/content-engine/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	pipeline *usecase.PipelineService
}

// NewHandler creates a new HTTP handler
func NewHandler(pipeline *usecase.PipelineService) *Handler {
	return &Handler{
		pipeline: pipeline,
	}
}

// generateRequest is the request body for page generation. The competitor
// record is optional; without it the comparison page cannot be produced.
type generateRequest struct {
	Product    map[string]any `json:"product" binding:"required"`
	Competitor map[string]any `json:"competitor"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "kasparro-content-engine",
		"version": "1.0.0",
	})
}

// GeneratePages runs the full pipeline and returns all three pages
func (h *Handler) GeneratePages(c *gin.Context) {
	if h.pipeline == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "content pipeline not configured",
		})
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request body: " + err.Error(),
		})
		return
	}

	result, err := h.pipeline.Run(c.Request.Context(), req.Product, req.Competitor)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"faq":             result.FAQ,
		"product_page":    result.ProductPage,
		"comparison_page": result.ComparisonPage,
	})
}

// GeneratePage runs the pipeline for the single page type named in the URL
func (h *Handler) GeneratePage(c *gin.Context) {
	if h.pipeline == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "content pipeline not configured",
		})
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request body: " + err.Error(),
		})
		return
	}

	pageType := domain.PageType(c.Param("type"))
	page, err := h.pipeline.RunPage(c.Request.Context(), pageType, req.Product, req.Competitor)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// respondPipelineError maps domain errors to HTTP status codes
func respondPipelineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrSchemaValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrMissingCompetitor):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUnknownPageType):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
