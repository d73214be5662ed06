package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"restaurant-api/internal/domain/user"
	"restaurant-api/internal/handler/api"
	"restaurant-api/internal/handler/middleware"
	"restaurant-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Reservation *api.ReservationHandler
	Menu        *api.MenuHandler
	Review      *api.ReviewHandler
	Event       *api.EventHandler
	Gallery     *api.GalleryHandler
	Contact     *api.ContactHandler
	Stats       *api.StatsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	publicWriteLimit := middleware.PublicWriteRateLimit(cfg.RateLimit)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/menu", Handler: h.Menu.FullMenu},
			{Method: http.MethodGet, Path: "/menu/categories", Handler: h.Menu.ListCategories},
			{Method: http.MethodGet, Path: "/menu/categories/:slug", Handler: h.Menu.CategoryBySlug},
			{Method: http.MethodGet, Path: "/menu/items/:id", Handler: h.Menu.GetItem},
			{Method: http.MethodGet, Path: "/menu/featured", Handler: h.Menu.FeaturedItems},
			{Method: http.MethodGet, Path: "/search", Handler: h.Menu.Search},

			{Method: http.MethodGet, Path: "/stats", Handler: h.Stats.Site},

			{Method: http.MethodGet, Path: "/reservations/availability", Handler: h.Reservation.CheckAvailability},
			{Method: http.MethodPost, Path: "/reservations", Handler: h.Reservation.Create, Mw: []gin.HandlerFunc{publicWriteLimit}},

			{Method: http.MethodGet, Path: "/reviews", Handler: h.Review.ListApproved},
			{Method: http.MethodGet, Path: "/reviews/featured", Handler: h.Review.Featured},
			{Method: http.MethodGet, Path: "/reviews/summary", Handler: h.Review.Summary},
			{Method: http.MethodPost, Path: "/reviews", Handler: h.Review.Create, Mw: []gin.HandlerFunc{publicWriteLimit}},

			{Method: http.MethodGet, Path: "/events", Handler: h.Event.ListUpcoming},
			{Method: http.MethodGet, Path: "/events/:id", Handler: h.Event.Get},

			{Method: http.MethodGet, Path: "/gallery", Handler: h.Gallery.List},

			{Method: http.MethodPost, Path: "/contact", Handler: h.Contact.Create, Mw: []gin.HandlerFunc{publicWriteLimit}},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			adminOnly := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/stats", Handler: h.Stats.Dashboard},

				{Method: http.MethodGet, Path: "/reservations", Handler: h.Reservation.List},
				{Method: http.MethodGet, Path: "/reservations/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPatch, Path: "/reservations/:id/status", Handler: h.Reservation.UpdateStatus},
				{Method: http.MethodDelete, Path: "/reservations/:id", Handler: h.Reservation.Delete, Mw: []gin.HandlerFunc{adminOnly}},

				{Method: http.MethodPost, Path: "/menu/categories", Handler: h.Menu.CreateCategory},
				{Method: http.MethodPatch, Path: "/menu/categories/:id", Handler: h.Menu.UpdateCategory},
				{Method: http.MethodDelete, Path: "/menu/categories/:id", Handler: h.Menu.DeleteCategory, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPost, Path: "/menu/items", Handler: h.Menu.CreateItem},
				{Method: http.MethodPatch, Path: "/menu/items/:id", Handler: h.Menu.UpdateItem},
				{Method: http.MethodDelete, Path: "/menu/items/:id", Handler: h.Menu.DeleteItem, Mw: []gin.HandlerFunc{adminOnly}},

				{Method: http.MethodGet, Path: "/reviews", Handler: h.Review.List},
				{Method: http.MethodPatch, Path: "/reviews/:id", Handler: h.Review.Moderate},
				{Method: http.MethodDelete, Path: "/reviews/:id", Handler: h.Review.Delete, Mw: []gin.HandlerFunc{adminOnly}},

				{Method: http.MethodGet, Path: "/events", Handler: h.Event.ListAll},
				{Method: http.MethodPost, Path: "/events", Handler: h.Event.Create},
				{Method: http.MethodPatch, Path: "/events/:id", Handler: h.Event.Update},
				{Method: http.MethodDelete, Path: "/events/:id", Handler: h.Event.Delete, Mw: []gin.HandlerFunc{adminOnly}},

				{Method: http.MethodPost, Path: "/gallery", Handler: h.Gallery.Create},
				{Method: http.MethodPatch, Path: "/gallery/:id", Handler: h.Gallery.Update},
				{Method: http.MethodDelete, Path: "/gallery/:id", Handler: h.Gallery.Delete, Mw: []gin.HandlerFunc{adminOnly}},

				{Method: http.MethodGet, Path: "/messages", Handler: h.Contact.List},
				{Method: http.MethodGet, Path: "/messages/:id", Handler: h.Contact.Get},
				{Method: http.MethodPatch, Path: "/messages/:id/read", Handler: h.Contact.MarkRead},
				{Method: http.MethodDelete, Path: "/messages/:id", Handler: h.Contact.Delete, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
