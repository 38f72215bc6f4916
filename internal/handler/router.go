package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"digital-menu/internal/domain/user"
	"digital-menu/internal/handler/api"
	"digital-menu/internal/handler/middleware"
	"digital-menu/internal/handler/ws"
	"digital-menu/internal/pkg/config"
	"digital-menu/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth       *api.AuthHandler
	Restaurant *api.RestaurantHandler
	Menu       *api.MenuHandler
	Offer      *api.OfferHandler
	Carousel   *ws.OffersHandler
}

func NewHandlers(auth *api.AuthHandler, restaurant *api.RestaurantHandler, menu *api.MenuHandler, offer *api.OfferHandler, carousel *ws.OffersHandler) Handlers {
	return Handlers{
		Auth:       auth,
		Restaurant: restaurant,
		Menu:       menu,
		Offer:      offer,
		Carousel:   carousel,
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.Locale())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.GET("/ws/restaurants/:slug/offers", h.Carousel.Serve)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.SignUp},
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

		restaurants := apiGroup.Group("/restaurants")
		addRoutes(restaurants, []route{
			{Method: http.MethodGet, Path: "/:slug", Handler: h.Restaurant.GetBySlug},
			{Method: http.MethodGet, Path: "/:slug/offers", Handler: h.Restaurant.ListOffers},
		})

		owner := apiGroup.Group("/owner")
		owner.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleOwner))
		{
			addRoutes(owner, []route{
				{Method: http.MethodGet, Path: "/restaurant", Handler: h.Restaurant.GetOwned},
				{Method: http.MethodPost, Path: "/restaurant", Handler: h.Restaurant.Create},
				{Method: http.MethodPut, Path: "/restaurant/customization", Handler: h.Restaurant.UpdateCustomization},

				{Method: http.MethodPost, Path: "/categories", Handler: h.Menu.CreateCategory},
				{Method: http.MethodPut, Path: "/categories/:id", Handler: h.Menu.UpdateCategory},
				{Method: http.MethodDelete, Path: "/categories/:id", Handler: h.Menu.DeleteCategory},
				{Method: http.MethodPost, Path: "/categories/:id/items", Handler: h.Menu.CreateItem},
				{Method: http.MethodPut, Path: "/items/:id", Handler: h.Menu.UpdateItem},
				{Method: http.MethodPost, Path: "/items/:id/sold-out", Handler: h.Menu.ToggleSoldOut},

				{Method: http.MethodPost, Path: "/offers", Handler: h.Offer.Create},
				{Method: http.MethodPut, Path: "/offers/:id", Handler: h.Offer.Update},
				{Method: http.MethodDelete, Path: "/offers/:id", Handler: h.Offer.Delete},
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
