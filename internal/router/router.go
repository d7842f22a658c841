// Package router wires repositories, services and handlers into the HTTP API.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-whiskey-collection/internal/handlers"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/jwt"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/logger"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/middlewares"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/repositories"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/services"
)

// Config holds the dependencies the API is built from.
type Config struct {
	DB  *sqlx.DB
	JWT *jwt.JWT

	// Redis enables the whiskey read-through cache when set.
	Redis    *redis.Client
	CacheTTL time.Duration

	// KafkaWriter enables activity events when set.
	KafkaWriter services.KafkaWriter

	// SwaggerURL is the location of doc.json served to the swagger UI.
	SwaggerURL string
}

// New builds the chi router for the whiskey collection API.
func New(cfg Config) http.Handler {
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(cfg.DB)
	userWriteRepo := repositories.NewUserWriteRepository(cfg.DB)
	whiskeyReadRepo := repositories.NewWhiskeyReadRepository(cfg.DB, txGetter)
	whiskeyWriteRepo := repositories.NewWhiskeyWriteRepository(cfg.DB, txGetter)
	collectionReadRepo := repositories.NewCollectionReadRepository(cfg.DB, txGetter)
	collectionWriteRepo := repositories.NewCollectionWriteRepository(cfg.DB, txGetter)
	ratingReadRepo := repositories.NewRatingReadRepository(cfg.DB, txGetter)
	ratingWriteRepo := repositories.NewRatingWriteRepository(cfg.DB, txGetter)

	var whiskeyCache services.WhiskeyCache
	if cfg.Redis != nil {
		whiskeyCache = repositories.NewWhiskeyCacheRepository(cfg.Redis, cfg.CacheTTL)
	}

	// Activity events leave only after the request transaction commits
	var kafkaWriter services.KafkaWriter
	if cfg.KafkaWriter != nil {
		kafkaWriter = middlewares.NewCommitAwareWriter(cfg.KafkaWriter)
	}

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, cfg.JWT)
	whiskeyService := services.NewWhiskeyService(whiskeyReadRepo, whiskeyWriteRepo, whiskeyCache)
	collectionService := services.NewCollectionService(collectionReadRepo, collectionWriteRepo, whiskeyReadRepo, kafkaWriter)
	ratingService := services.NewRatingService(ratingReadRepo, ratingWriteRepo, whiskeyReadRepo, kafkaWriter)

	authMiddleware := middlewares.AuthMiddleware(cfg.JWT, userReadRepo)
	txMiddleware := middlewares.TxMiddleware(cfg.DB)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Whiskey Collection API is running"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", handlers.NewRegisterHandler(authService))
		r.Post("/auth/login", handlers.NewLoginHandler(authService))

		r.Route("/whiskies", func(r chi.Router) {
			r.Get("/", handlers.NewListWhiskiesHandler(whiskeyService))
			r.Get("/search", handlers.NewSearchWhiskiesHandler(whiskeyService))
			r.Get("/{id}", handlers.NewGetWhiskeyHandler(whiskeyService))

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware)
				r.Post("/", handlers.NewCreateWhiskeyHandler(whiskeyService))
				r.Put("/{id}", handlers.NewUpdateWhiskeyHandler(whiskeyService))
				r.Delete("/{id}", handlers.NewDeleteWhiskeyHandler(whiskeyService))
			})
		})

		r.Route("/collection", func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/", handlers.NewGetCollectionHandler(collectionService))

			r.Group(func(r chi.Router) {
				r.Use(txMiddleware)
				r.Post("/", handlers.NewAddToCollectionHandler(collectionService))
				r.Put("/{id}", handlers.NewUpdateCollectionEntryHandler(collectionService))
				r.Delete("/{id}", handlers.NewRemoveFromCollectionHandler(collectionService))
			})
		})

		r.Route("/ratings", func(r chi.Router) {
			r.Get("/whiskey/{whiskeyId}", handlers.NewGetWhiskeyRatingsHandler(ratingService))

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware)
				r.Get("/user", handlers.NewGetUserRatingsHandler(ratingService))

				r.Group(func(r chi.Router) {
					r.Use(txMiddleware)
					r.Post("/whiskey/{whiskeyId}", handlers.NewRateWhiskeyHandler(ratingService))
					r.Delete("/{id}", handlers.NewDeleteRatingHandler(ratingService))
				})
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(cfg.SwaggerURL)))

	return r
}
