package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"afisha/internal/cache"
	apperrors "afisha/internal/errors"
	"afisha/internal/models"
	"afisha/internal/service"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	services     *service.Services
	valkeyClient *cache.ValkeyClient
}

func NewHandlers(services *service.Services, valkeyClient *cache.ValkeyClient) *Handlers {
	return &Handlers{
		services:     services,
		valkeyClient: valkeyClient,
	}
}

// Home - GET /
// Главная страница
func (h *Handlers) Home(c *gin.Context) {
	h.renderHome(c, nil)
}

// NotFound renders the 404 page for unknown routes and missing records.
func (h *Handlers) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "errors/404.html", gin.H{})
}

func (h *Handlers) renderServerError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "errors/500.html", gin.H{})
}

// renderHome renders the home page with at most one flash notification.
func (h *Handlers) renderHome(c *gin.Context, flash *models.Flash) {
	c.HTML(http.StatusOK, "pages/home.html", gin.H{"Flash": flash})
}

// renderRecordError maps a service error to the right error page:
// missing records get the 404 page, everything else the 500 page.
func (h *Handlers) renderRecordError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		h.NotFound(c)
		return
	}
	h.renderServerError(c)
}

// pathID parses the numeric id path parameter. A malformed id is treated
// the same as a missing record.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func successFlash(message string) *models.Flash {
	return &models.Flash{Message: message, Success: true}
}

func failureFlash(message string) *models.Flash {
	return &models.Flash{Message: message, Success: false}
}

// invalidateListings drops cached listing view models after a mutation.
func (h *Handlers) invalidateListings(c *gin.Context, keys ...string) {
	if h.valkeyClient != nil {
		h.valkeyClient.Invalidate(c.Request.Context(), keys...)
	}
}
