package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/krapesto/menu-api/internal/config"
	"github.com/krapesto/menu-api/internal/database"
	"github.com/krapesto/menu-api/internal/enum"
	"github.com/krapesto/menu-api/internal/events"
	"github.com/krapesto/menu-api/internal/handler"
	mw "github.com/krapesto/menu-api/internal/middleware"
	"github.com/krapesto/menu-api/internal/service"
	"github.com/krapesto/menu-api/internal/ws"
)

// Deps are the long-lived collaborators the routes share.
type Deps struct {
	Queries   *database.Queries
	Pool      *pgxpool.Pool
	Hub       *ws.Hub
	Publisher events.Publisher
	// Images may be nil when object storage is not configured.
	Images   handler.ImageStore
	Location *time.Location
	Logger   *zap.SugaredLogger
}

// New creates a Chi router with all application routes wired up.
// The lunch menu and its websocket are public; catalog management needs
// ADMIN and daily menu management needs ADMIN or STAFF.
func New(cfg *config.Config, d Deps) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"1.0.0"}`)) //nolint:errcheck
	})

	lunchMenuService := service.NewLunchMenuService(d.Queries, d.Location)

	// Auth routes (public)
	authHandler := handler.NewAuthHandler(d.Queries, cfg.JWTSecret, d.Logger)
	authHandler.RegisterRoutes(r)

	// Public lunch menu
	lunchMenuHandler := handler.NewLunchMenuHandler(lunchMenuService, cfg.PublicBaseURL, d.Logger)
	r.Route("/lunch-menu", lunchMenuHandler.RegisterRoutes)

	r.Get("/ws/lunch-menu", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(d.Hub, w, r)
	})

	// Protected routes (require authentication)
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate(cfg.JWTSecret, d.Queries))

		// Catalog (ADMIN only)
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireRole(enum.UserRoleAdmin))

			categoryHandler := handler.NewCategoryHandler(d.Queries, d.Logger)
			r.Route("/categories", categoryHandler.RegisterRoutes)

			subcategoryHandler := handler.NewSubcategoryHandler(d.Queries, d.Logger)
			r.Route("/subcategories", subcategoryHandler.RegisterRoutes)

			dishHandler := handler.NewDishHandler(d.Queries, d.Images, cfg.PublicBaseURL, d.Logger)
			r.Route("/dishes", dishHandler.RegisterRoutes)

			newOptionStore := func(db database.DBTX) service.ComplexOptionStore {
				return database.New(db)
			}
			optionService := service.NewComplexOptionService(d.Pool, newOptionStore)
			complexHandler := handler.NewComplexHandler(d.Queries, optionService, d.Logger)
			r.Route("/complexes", complexHandler.RegisterRoutes)

			userHandler := handler.NewUserHandler(d.Queries, d.Logger)
			r.Route("/users", userHandler.RegisterRoutes)
		})

		// Daily menus (ADMIN or STAFF)
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireRole(enum.UserRoleAdmin, enum.UserRoleStaff))

			dailyMenuHandler := handler.NewDailyMenuHandler(d.Queries, lunchMenuService, d.Publisher, cfg.PublicBaseURL, d.Logger)
			r.Route("/daily-menus", dailyMenuHandler.RegisterRoutes)
		})
	})

	d.Logger.Info("router initialized")
	return r
}
