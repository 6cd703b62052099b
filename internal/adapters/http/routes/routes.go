package routes

import (
	"context"
	"time"

	"literaryhub/internal/adapters/http/handlers"
	"literaryhub/internal/adapters/http/middleware"
	"literaryhub/internal/adapters/persistence/repositories"
	"literaryhub/internal/config"
	"literaryhub/internal/core/services"
	"literaryhub/internal/pkg/clock"
	"literaryhub/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	jsoniter "github.com/json-iterator/go"
	"gorm.io/gorm"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Infra carries the optional adapters wired by the entrypoint
type Infra struct {
	Clock     clock.Clock
	Publisher services.ActivityPublisher
	Storage   fiber.Storage

	// HealthChecks are reported next to the database check on /api/health
	HealthChecks map[string]handlers.HealthCheck
}

// NewApp creates the Fiber app with the shared JSON codec and error handler
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      "LiteraryHub API",
		ErrorHandler: middleware.CustomErrorHandler,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})
}

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, infra Infra) {
	if infra.Clock == nil {
		infra.Clock = clock.NewSystem(cfg.Location)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	bookRepo := repositories.NewBookRepository(db)
	borrowRepo := repositories.NewBorrowRepository(db)
	newsRepo := repositories.NewNewsRepository(db)
	logRepo := repositories.NewActivityLogRepository(db)

	// Initialize services
	activityService := services.NewActivityService(logRepo, infra.Publisher)
	borrowService := services.NewBorrowService(borrowRepo, cfg.Policy, infra.Clock)
	catalogService := services.NewCatalogService(bookRepo, borrowRepo, activityService, cfg.Policy, infra.Clock)
	newsService := services.NewNewsService(newsRepo, activityService)
	authService := services.NewAuthService(userRepo, activityService, cfg)
	userService := services.NewUserService(userRepo, bookRepo, borrowService, activityService, infra.Clock)
	dashboardService := services.NewDashboardService(db, borrowService, infra.Clock)
	systemService := services.NewSystemService(bookRepo, newsRepo, activityService)

	// Initialize handlers
	validator := validate.New()
	checks := map[string]handlers.HealthCheck{
		"database": func(ctx context.Context) error { return config.PingDatabase(ctx, db) },
	}
	for name, check := range infra.HealthChecks {
		checks[name] = check
	}
	healthHandler := handlers.NewHealthHandler(cfg.AppMode, checks)
	authHandler := handlers.NewAuthHandler(authService, validator, cfg)
	userHandler := handlers.NewUserHandler(userService, validator)
	bookHandler := handlers.NewBookHandler(catalogService, validator)
	borrowHandler := handlers.NewBorrowHandler(borrowService, userService, validator)
	newsHandler := handlers.NewNewsHandler(newsService, validator)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, activityService)
	systemHandler := handlers.NewSystemHandler(systemService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")
	api.Get("/health", healthHandler.HealthCheck)

	auth := middleware.AuthMiddleware(cfg)

	setupAuthRoutes(api.Group("/auth"), authHandler, auth, infra.Storage)
	setupBookRoutes(api, bookHandler, auth)
	setupBorrowRoutes(api.Group("/borrows", auth), borrowHandler)
	setupNewsRoutes(api.Group("/news"), newsHandler, auth)
	setupUserRoutes(api.Group("/users", auth), userHandler)
	setupAdminRoutes(api.Group("/admin", auth, middleware.StaffOnly()), dashboardHandler, userHandler)

	api.Post("/system/reset", auth, middleware.AdminOnly(), middleware.StrictRateLimiter(infra.Storage), systemHandler.Reset)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, auth fiber.Handler, storage fiber.Storage) {
	// Public routes
	router.Post("/register", middleware.StrictRateLimiter(storage), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(storage), handler.Login)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", auth, middleware.NoCacheHeaders(), handler.Me)
}

// setupBookRoutes configures catalog routes
func setupBookRoutes(router fiber.Router, handler *handlers.BookHandler, auth fiber.Handler) {
	// Availability changes with every borrow, so the listing is never cached
	router.Get("/books", middleware.NoCacheHeaders(), handler.ListBooks)
	router.Get("/books/search", handler.SearchBooks)
	router.Get("/authors", middleware.PublicCache(5*time.Minute), handler.Authors)
	router.Get("/books/:id/read", handler.ReadBook)
	router.Get("/books/:id", handler.GetBook)

	// Admin/Librarian routes
	staff := middleware.StaffOnly()
	router.Post("/books", auth, staff, handler.CreateBook)
	router.Put("/books/:id", auth, staff, handler.UpdateBook)
	router.Delete("/books/:id", auth, staff, handler.DeleteBook)
}

// setupBorrowRoutes configures borrow ledger routes (Authenticated)
func setupBorrowRoutes(router fiber.Router, handler *handlers.BorrowHandler) {
	router.Use(middleware.NoCacheHeaders())
	router.Post("/", handler.Borrow)
	router.Get("/user/:userId", handler.ListUserBorrows)

	// Admin/Librarian routes
	router.Get("/", middleware.StaffOnly(), handler.ListAllBorrows)
	router.Put("/:borrowId/return", middleware.StaffOnly(), handler.Return)
}

// setupNewsRoutes configures news routes
func setupNewsRoutes(router fiber.Router, handler *handlers.NewsHandler, auth fiber.Handler) {
	router.Get("/", handler.List)
	router.Get("/:id", handler.Get)

	// Admin/Librarian routes
	staff := middleware.StaffOnly()
	router.Post("/", auth, staff, handler.Create)
	router.Put("/:id", auth, staff, handler.Update)
	router.Delete("/:id", auth, staff, handler.Delete)
}

// setupUserRoutes configures profile routes (Authenticated)
func setupUserRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Get("/:userId", handler.GetProfile)
	router.Put("/:userId", handler.UpdateProfile)
	router.Put("/:userId/password", handler.ChangePassword)
	router.Put("/:userId/avatar", handler.UpdateAvatar)
	router.Get("/:userId/stats", handler.Stats)
	router.Post("/:userId/heartbeat", handler.Heartbeat)

	// Favorites
	router.Get("/:userId/favorites", handler.Favorites)
	router.Post("/:userId/favorites", handler.AddFavorite)
	router.Delete("/:userId/favorites/:bookId", handler.RemoveFavorite)
}

// setupAdminRoutes configures staff routes
func setupAdminRoutes(router fiber.Router, dashboard *handlers.DashboardHandler, users *handlers.UserHandler) {
	router.Get("/stats", dashboard.GetAdminDashboard)
	router.Get("/users", users.ListUsers)

	// Admin only
	admin := middleware.AdminOnly()
	router.Put("/users/:userId/role", admin, users.UpdateRole)
	router.Delete("/users/:userId", admin, users.DeleteUser)
	router.Get("/logs", admin, dashboard.ListLogs)
}
