package api

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"afisha/internal/cache"
	"afisha/internal/config"
	"afisha/internal/database"
	"afisha/internal/handlers"
	"afisha/internal/messaging"
	"afisha/internal/metrics"
	"afisha/internal/middleware"
	"afisha/internal/repository"
	"afisha/internal/service"

	"github.com/gin-gonic/gin"
)

// Server представляет HTTP сервер каталога
type Server struct {
	router   *gin.Engine
	config   *config.Config
	db       *database.DB
	valkey   *cache.ValkeyClient
	nats     *messaging.NATSClient
	services *service.Services
	repos    *repository.Repositories
}

// NewServer создает новый экземпляр сервера
func NewServer(cfg *config.Config) *Server {
	// Устанавливаем режим Gin
	gin.SetMode(cfg.GinMode)

	// Подключаемся к базе данных
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Запускаем миграции
	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Кеш списков опционален: без него каждый запрос идет в базу
	valkeyClient, err := cache.NewValkeyClient(cfg.Cache)
	if err != nil {
		slog.Warn("Listing cache unavailable, continuing without it", "error", err)
		valkeyClient = nil
	}

	// Шина событий тоже опциональна
	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		slog.Warn("NATS unavailable, mutation events will not be published", "error", err)
		natsClient = nil
	}

	// Создаем репозитории
	repos := repository.NewRepositories(db)

	// Создаем сервисы
	services := service.NewServices(repos, natsClient)

	// Создаем роутер
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Metrics())

	// Загружаем HTML шаблоны и статику
	router.LoadHTMLGlob(cfg.TemplateGlob)
	router.Static("/static", cfg.StaticDir)

	// Создаем сервер
	server := &Server{
		router:   router,
		config:   cfg,
		db:       db,
		valkey:   valkeyClient,
		nats:     natsClient,
		services: services,
		repos:    repos,
	}

	// Настраиваем роуты
	server.setupRoutes()

	return server
}

// setupRoutes настраивает все роуты каталога
func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.services, s.valkey)

	s.router.GET("/", h.Home)

	// Venues endpoints
	venues := s.router.Group("/venues")
	{
		venues.GET("", h.ListVenues)
		venues.POST("/search", h.SearchVenues)
		venues.GET("/create", h.NewVenueForm)
		venues.POST("/create", h.CreateVenue)
		venues.GET("/:id", h.ShowVenue)
		venues.DELETE("/:id", h.DeleteVenue)
		venues.GET("/:id/edit", h.EditVenueForm)
		venues.POST("/:id/edit", h.UpdateVenue)
	}

	// Artists endpoints
	artists := s.router.Group("/artists")
	{
		artists.GET("", h.ListArtists)
		artists.POST("/search", h.SearchArtists)
		artists.GET("/create", h.NewArtistForm)
		artists.POST("/create", h.CreateArtist)
		artists.GET("/:id", h.ShowArtist)
		artists.GET("/:id/edit", h.EditArtistForm)
		artists.POST("/:id/edit", h.UpdateArtist)
	}

	// Shows endpoints
	shows := s.router.Group("/shows")
	{
		shows.GET("", h.ListShows)
		shows.GET("/create", h.NewShowForm)
		shows.POST("/create", h.CreateShow)
	}

	// Неизвестные маршруты получают страницу 404
	s.router.NoRoute(h.NotFound)

	// Health check endpoint
	s.router.GET("/health", s.healthCheck)

	// Prometheus metrics
	s.router.GET("/metrics", gin.WrapH(metrics.Handler()))
}

// healthCheck обрабатывает health check запросы
func (s *Server) healthCheck(c *gin.Context) {
	dbHealth := s.db.HealthCheck(c.Request.Context())

	status := http.StatusOK
	if dbHealth.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":   dbHealth.Status,
		"service":  "afisha",
		"version":  "1.0.0",
		"database": dbHealth,
	})
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	return s.router.Run(addr)
}

// GetRouter возвращает роутер для тестирования
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Cleanup закрывает соединения
func (s *Server) Cleanup() error {
	if s.nats != nil {
		if err := s.nats.Close(); err != nil {
			log.Printf("Error closing NATS connection: %v", err)
		}
	}

	if s.valkey != nil {
		if err := s.valkey.Close(); err != nil {
			log.Printf("Error closing cache connection: %v", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			log.Printf("Error closing database connection: %v", err)
			return err
		}
	}

	return nil
}
