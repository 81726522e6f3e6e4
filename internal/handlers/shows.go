package handlers

import (
	"encoding/json"
	"net/http"

	"afisha/internal/cache"
	"afisha/internal/logger"
	"afisha/internal/models"

	"github.com/gin-gonic/gin"
)

// ListShows - GET /shows
// Плоский список всех шоу
func (h *Handlers) ListShows(c *gin.Context) {
	// Try the listing cache first
	if h.valkeyClient != nil {
		if raw, err := h.valkeyClient.GetListingRaw(c.Request.Context(), cache.ShowsListingKey); err == nil {
			var records []models.ShowRecord
			if err := json.Unmarshal(raw, &records); err == nil {
				c.HTML(http.StatusOK, "pages/shows.html", gin.H{"Shows": records})
				return
			}
		}
	}

	records, err := h.services.Shows.List(c.Request.Context())
	if err != nil {
		logger.WithContext(c.Request.Context()).Error("Failed to list shows", "error", err)
		h.renderServerError(c)
		return
	}

	if h.valkeyClient != nil {
		h.valkeyClient.SetListing(c.Request.Context(), cache.ShowsListingKey, records)
	}

	c.HTML(http.StatusOK, "pages/shows.html", gin.H{"Shows": records})
}

// NewShowForm - GET /shows/create
func (h *Handlers) NewShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "forms/new_show.html", gin.H{})
}

// CreateShow - POST /shows/create
// Создать шоу, связывающее площадку и артиста
func (h *Handlers) CreateShow(c *gin.Context) {
	var form models.ShowForm
	if err := c.ShouldBind(&form); err != nil {
		logger.WithContext(c.Request.Context()).Error("Invalid show form", "error", err)
		h.renderHome(c, failureFlash("An error occurred. Show could not be listed."))
		return
	}

	if err := h.services.Shows.Create(c.Request.Context(), &form); err != nil {
		logger.WithContext(c.Request.Context()).Error("Failed to create show", "venue_id", form.VenueID, "artist_id", form.ArtistID, "error", err)
		h.renderHome(c, failureFlash("An error occurred. Show could not be listed."))
		return
	}

	h.invalidateListings(c, cache.ShowsListingKey)
	h.renderHome(c, successFlash("Show was successfully listed!"))
}
