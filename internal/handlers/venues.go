package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"afisha/internal/cache"
	apperrors "afisha/internal/errors"
	"afisha/internal/logger"
	"afisha/internal/models"

	"github.com/gin-gonic/gin"
)

// ListVenues - GET /venues
// Каталог площадок, сгруппированных по городу и штату
func (h *Handlers) ListVenues(c *gin.Context) {
	// Try the listing cache first
	if h.valkeyClient != nil {
		if raw, err := h.valkeyClient.GetListingRaw(c.Request.Context(), cache.VenueDirectoryKey); err == nil {
			var areas []models.VenueArea
			if err := json.Unmarshal(raw, &areas); err == nil {
				c.HTML(http.StatusOK, "pages/venues.html", gin.H{"Areas": areas})
				return
			}
		}
	}

	areas, err := h.services.Venues.Directory(c.Request.Context())
	if err != nil {
		logger.WithContext(c.Request.Context()).Error("Failed to build venue directory", "error", err)
		h.renderServerError(c)
		return
	}

	if h.valkeyClient != nil {
		h.valkeyClient.SetListing(c.Request.Context(), cache.VenueDirectoryKey, areas)
	}

	c.HTML(http.StatusOK, "pages/venues.html", gin.H{"Areas": areas})
}

// SearchVenues - POST /venues/search
// Поиск площадок по подстроке имени
func (h *Handlers) SearchVenues(c *gin.Context) {
	searchTerm := c.PostForm("search_term")

	results, err := h.services.Venues.Search(c.Request.Context(), searchTerm)
	if err != nil {
		logger.WithContext(c.Request.Context()).Error("Failed to search venues", "term", searchTerm, "error", err)
		h.renderServerError(c)
		return
	}

	c.HTML(http.StatusOK, "pages/search_venues.html", gin.H{
		"Results":    results,
		"SearchTerm": searchTerm,
	})
}

// ShowVenue - GET /venues/:id
// Страница площадки с прошедшими и будущими шоу
func (h *Handlers) ShowVenue(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.NotFound(c)
		return
	}

	page, err := h.services.Venues.Get(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.WithContext(c.Request.Context()).Error("Failed to build venue page", "venue_id", id, "error", err)
		}
		h.renderRecordError(c, err)
		return
	}

	c.HTML(http.StatusOK, "pages/show_venue.html", gin.H{"Venue": page})
}

// NewVenueForm - GET /venues/create
func (h *Handlers) NewVenueForm(c *gin.Context) {
	c.HTML(http.StatusOK, "forms/new_venue.html", gin.H{})
}

// CreateVenue - POST /venues/create
// Создать площадку
func (h *Handlers) CreateVenue(c *gin.Context) {
	var form models.VenueForm
	if err := c.ShouldBind(&form); err != nil {
		logger.WithContext(c.Request.Context()).Error("Invalid venue form", "error", err)
		h.renderHome(c, failureFlash("An error occurred. Venue "+form.Name+" could not be listed."))
		return
	}

	venue, err := h.services.Venues.Create(c.Request.Context(), &form)
	if err != nil {
		logger.WithContext(c.Request.Context()).Error("Failed to create venue", "name", form.Name, "error", err)
		h.renderHome(c, failureFlash("An error occurred. Venue "+form.Name+" could not be listed."))
		return
	}

	h.invalidateListings(c, cache.VenueDirectoryKey)
	h.renderHome(c, successFlash("Venue "+venue.Name+" was successfully listed!"))
}

// EditVenueForm - GET /venues/:id/edit
func (h *Handlers) EditVenueForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.NotFound(c)
		return
	}

	venue, err := h.services.Venues.Find(c.Request.Context(), id)
	if err != nil {
		h.renderRecordError(c, err)
		return
	}

	c.HTML(http.StatusOK, "forms/edit_venue.html", gin.H{"Venue": venue})
}

// UpdateVenue - POST /venues/:id/edit
// Перезаписать редактируемые поля площадки
func (h *Handlers) UpdateVenue(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.NotFound(c)
		return
	}

	var form models.VenueForm
	if err := c.ShouldBind(&form); err != nil {
		logger.WithContext(c.Request.Context()).Error("Invalid venue form", "venue_id", id, "error", err)
		h.renderHome(c, failureFlash("An error occurred. Venue "+form.Name+" could not be updated."))
		return
	}

	venue, err := h.services.Venues.Update(c.Request.Context(), id, &form)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			h.NotFound(c)
			return
		}
		logger.WithContext(c.Request.Context()).Error("Failed to update venue", "venue_id", id, "error", err)
		h.renderHome(c, failureFlash("An error occurred. Venue "+form.Name+" could not be updated."))
		return
	}

	// Venue names appear in the flattened shows listing too
	h.invalidateListings(c, cache.VenueDirectoryKey, cache.ShowsListingKey)

	page, err := h.services.Venues.Get(c.Request.Context(), id)
	if err != nil {
		logger.WithContext(c.Request.Context()).Error("Failed to build venue page after update", "venue_id", id, "error", err)
		h.renderServerError(c)
		return
	}

	c.HTML(http.StatusOK, "pages/show_venue.html", gin.H{
		"Venue": page,
		"Flash": successFlash("Venue " + venue.Name + " was successfully updated!"),
	})
}

// DeleteVenue - DELETE /venues/:id
// Удалить площадку; удаление площадки с шоу отклоняется
func (h *Handlers) DeleteVenue(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.NotFound(c)
		return
	}

	err := h.services.Venues.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			h.NotFound(c)
			return
		}
		if errors.Is(err, apperrors.ErrOwnedShows) {
			h.renderHome(c, failureFlash("An error occurred. Venue still has shows and could not be deleted."))
			return
		}
		logger.WithContext(c.Request.Context()).Error("Failed to delete venue", "venue_id", id, "error", err)
		h.renderHome(c, failureFlash("An error occurred. Venue could not be deleted."))
		return
	}

	h.invalidateListings(c, cache.VenueDirectoryKey)
	h.renderHome(c, successFlash("Venue was successfully deleted!"))
}
