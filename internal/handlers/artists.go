package handlers

import (
	"errors"
	"net/http"

	"afisha/internal/cache"
	apperrors "afisha/internal/errors"
	"afisha/internal/logger"
	"afisha/internal/models"

	"github.com/gin-gonic/gin"
)

// ListArtists - GET /artists
// Список всех артистов
func (h *Handlers) ListArtists(c *gin.Context) {
	artists, err := h.services.Artists.List(c.Request.Context())
	if err != nil {
		logger.WithContext(c.Request.Context()).Error("Failed to list artists", "error", err)
		h.renderServerError(c)
		return
	}

	c.HTML(http.StatusOK, "pages/artists.html", gin.H{"Artists": artists})
}

// SearchArtists - POST /artists/search
// Поиск артистов по подстроке имени
func (h *Handlers) SearchArtists(c *gin.Context) {
	searchTerm := c.PostForm("search_term")

	results, err := h.services.Artists.Search(c.Request.Context(), searchTerm)
	if err != nil {
		logger.WithContext(c.Request.Context()).Error("Failed to search artists", "term", searchTerm, "error", err)
		h.renderServerError(c)
		return
	}

	c.HTML(http.StatusOK, "pages/search_artists.html", gin.H{
		"Results":    results,
		"SearchTerm": searchTerm,
	})
}

// ShowArtist - GET /artists/:id
// Страница артиста с прошедшими и будущими шоу
func (h *Handlers) ShowArtist(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.NotFound(c)
		return
	}

	page, err := h.services.Artists.Get(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.WithContext(c.Request.Context()).Error("Failed to build artist page", "artist_id", id, "error", err)
		}
		h.renderRecordError(c, err)
		return
	}

	c.HTML(http.StatusOK, "pages/show_artist.html", gin.H{"Artist": page})
}

// NewArtistForm - GET /artists/create
func (h *Handlers) NewArtistForm(c *gin.Context) {
	c.HTML(http.StatusOK, "forms/new_artist.html", gin.H{})
}

// CreateArtist - POST /artists/create
// Создать артиста
func (h *Handlers) CreateArtist(c *gin.Context) {
	var form models.ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		logger.WithContext(c.Request.Context()).Error("Invalid artist form", "error", err)
		h.renderHome(c, failureFlash("An error occurred. Artist "+form.Name+" could not be listed."))
		return
	}

	artist, err := h.services.Artists.Create(c.Request.Context(), &form)
	if err != nil {
		logger.WithContext(c.Request.Context()).Error("Failed to create artist", "name", form.Name, "error", err)
		h.renderHome(c, failureFlash("An error occurred. Artist "+form.Name+" could not be listed."))
		return
	}

	h.renderHome(c, successFlash("Artist "+artist.Name+" was successfully listed!"))
}

// EditArtistForm - GET /artists/:id/edit
func (h *Handlers) EditArtistForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.NotFound(c)
		return
	}

	artist, err := h.services.Artists.Find(c.Request.Context(), id)
	if err != nil {
		h.renderRecordError(c, err)
		return
	}

	c.HTML(http.StatusOK, "forms/edit_artist.html", gin.H{"Artist": artist})
}

// UpdateArtist - POST /artists/:id/edit
// Перезаписать редактируемые поля артиста
func (h *Handlers) UpdateArtist(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.NotFound(c)
		return
	}

	var form models.ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		logger.WithContext(c.Request.Context()).Error("Invalid artist form", "artist_id", id, "error", err)
		h.renderHome(c, failureFlash("An error occurred. Artist "+form.Name+" could not be updated."))
		return
	}

	artist, err := h.services.Artists.Update(c.Request.Context(), id, &form)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			h.NotFound(c)
			return
		}
		logger.WithContext(c.Request.Context()).Error("Failed to update artist", "artist_id", id, "error", err)
		h.renderHome(c, failureFlash("An error occurred. Artist "+form.Name+" could not be updated."))
		return
	}

	// Artist names appear in the flattened shows listing
	h.invalidateListings(c, cache.ShowsListingKey)

	page, err := h.services.Artists.Get(c.Request.Context(), id)
	if err != nil {
		logger.WithContext(c.Request.Context()).Error("Failed to build artist page after update", "artist_id", id, "error", err)
		h.renderServerError(c)
		return
	}

	c.HTML(http.StatusOK, "pages/show_artist.html", gin.H{
		"Artist": page,
		"Flash":  successFlash("Artist " + artist.Name + " was successfully updated!"),
	})
}
