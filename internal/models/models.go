package models

import "strings"

// StartTimeLayout - фиксированный формат start_time в базе
const StartTimeLayout = "2006-01-02 15:04:05"

// ShowRecord - строка music_show, обогащенная полями обеих сторон.
// Репозиторий возвращает её как плоскую запись, без обхода связей ORM.
type ShowRecord struct {
	ShowID          int64  `json:"show_id"`
	VenueID         int64  `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	VenueImageLink  string `json:"venue_image_link"`
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ShowView - проекция шоу с полями контрагента для списков past/upcoming
type ShowView struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ImageLink string `json:"image_link"`
	StartTime string `json:"start_time"`
}

// ListItem - элемент списка (id + имя)
type ListItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// VenueArea - группа площадок одного города/штата
type VenueArea struct {
	City   string     `json:"city"`
	State  string     `json:"state"`
	Venues []ListItem `json:"venues"`
}

// SearchResponse - результат поиска по имени
type SearchResponse struct {
	Count int        `json:"count"`
	Data  []ListItem `json:"data"`
}

// VenuePage - страница площадки с классифицированными шоу
type VenuePage struct {
	Venue
	PastShows          []ShowView `json:"past_shows"`
	UpcomingShows      []ShowView `json:"upcoming_shows"`
	PastShowsCount     int        `json:"past_shows_count"`
	UpcomingShowsCount int        `json:"upcoming_shows_count"`
}

// ArtistPage - страница артиста с классифицированными шоу
type ArtistPage struct {
	Artist
	PastShows          []ShowView `json:"past_shows"`
	UpcomingShows      []ShowView `json:"upcoming_shows"`
	PastShowsCount     int        `json:"past_shows_count"`
	UpcomingShowsCount int        `json:"upcoming_shows_count"`
}

// VenueForm - модель формы создания/редактирования площадки
type VenueForm struct {
	Name         string   `form:"name" binding:"required"`
	City         string   `form:"city" binding:"required"`
	State        string   `form:"state" binding:"required"`
	Address      string   `form:"address" binding:"required"`
	Phone        string   `form:"phone"`
	Genres       []string `form:"genres"`
	ImageLink    string   `form:"image_link"`
	FacebookLink string   `form:"facebook_link"`
}

// ArtistForm - модель формы создания/редактирования артиста
type ArtistForm struct {
	Name               string   `form:"name" binding:"required"`
	City               string   `form:"city" binding:"required"`
	State              string   `form:"state" binding:"required"`
	Phone              string   `form:"phone"`
	Genres             []string `form:"genres"`
	ImageLink          string   `form:"image_link"`
	FacebookLink       string   `form:"facebook_link"`
	SeekingVenue       string   `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description"`
}

// ShowForm - модель формы создания шоу
type ShowForm struct {
	ArtistID  int64  `form:"artist_id" binding:"required"`
	VenueID   int64  `form:"venue_id" binding:"required"`
	StartTime string `form:"start_time" binding:"required"`
}

// Flash - единственное уведомление пользователя на запрос
type Flash struct {
	Message string
	Success bool
}

// ParseFlexibleBool поддерживает парсинг boolean из чекбоксов и текстовых значений
func ParseFlexibleBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}
