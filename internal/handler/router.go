package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"building-management/internal/domain/user"
	"building-management/internal/handler/api"
	"building-management/internal/handler/middleware"
	"building-management/internal/pkg/config"
	"building-management/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth          *api.AuthHandler
	Users         *api.UserHandler
	Apartments    *api.ApartmentHandler
	Agreements    *api.AgreementHandler
	Announcements *api.AnnouncementHandler
	Payments      *api.PaymentHandler
	Coupons       *api.CouponHandler
}

type RouterParams struct {
	fx.In

	Engine   *gin.Engine
	Config   config.Config
	Handlers Handlers
	Auth     *middleware.AuthMiddleware
	Metrics  metrics.Recorder
	Gatherer prometheus.Gatherer
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Metrics)
	setupRoutes(p.Engine, p.Handlers, p.Auth, p.Gatherer)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, rec metrics.Recorder) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.MetricsMiddleware(rec))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, gatherer prometheus.Gatherer) {
	engine.GET("/", root)
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler(gatherer)))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	adminOnly := []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleAdmin)}

	public := engine.Group("")
	addRoutes(public, []route{
		{Method: http.MethodPost, Path: "/jwt", Handler: h.Auth.IssueToken},
		{Method: http.MethodPut, Path: "/users/:email", Handler: h.Users.Upsert},
		{Method: http.MethodGet, Path: "/apartments", Handler: h.Apartments.List},
		{Method: http.MethodGet, Path: "/apartments/count", Handler: h.Apartments.Count},
		{Method: http.MethodPost, Path: "/saveAgreement", Handler: h.Agreements.Create},
		{Method: http.MethodPost, Path: "/create-payment-intent", Handler: h.Payments.CreateIntent},
		{Method: http.MethodPost, Path: "/payments", Handler: h.Payments.Settle},
		{Method: http.MethodGet, Path: "/coupons", Handler: h.Coupons.List},
		{Method: http.MethodGet, Path: "/coupons/:code", Handler: h.Coupons.Get},
	})

	secured := engine.Group("")
	secured.Use(authMiddleware.RequireAuth())
	addRoutes(secured, []route{
		{Method: http.MethodGet, Path: "/agreements", Handler: h.Agreements.List},
		{Method: http.MethodGet, Path: "/agreements/totalUnavailableRooms", Handler: h.Agreements.CountUnavailable},
		{Method: http.MethodGet, Path: "/user/:email", Handler: h.Users.Get},
		{Method: http.MethodGet, Path: "/fetchUserProfile", Handler: h.Users.Profile},
		{Method: http.MethodGet, Path: "/fetchAllAnnouncements", Handler: h.Announcements.List},
		{Method: http.MethodGet, Path: "/payments/history", Handler: h.Payments.History},

		{Method: http.MethodPut, Path: "/updateAgreementStatus/:id", Handler: h.Agreements.UpdateStatus, Mw: adminOnly},
		{Method: http.MethodPut, Path: "/updateUserRole/:email", Handler: h.Users.UpdateRole, Mw: adminOnly},
		{Method: http.MethodPut, Path: "/updateAcceptedDate/:id", Handler: h.Agreements.UpdateAcceptedDate, Mw: adminOnly},
		{Method: http.MethodPut, Path: "/updateRejectedDate/:id", Handler: h.Agreements.UpdateRejectedDate, Mw: adminOnly},
		{Method: http.MethodGet, Path: "/fetchAllAgreements", Handler: h.Agreements.List, Mw: adminOnly},
		{Method: http.MethodGet, Path: "/fetchMembers", Handler: h.Users.ListByRole, Mw: adminOnly},
		{Method: http.MethodPost, Path: "/make-announcement", Handler: h.Announcements.Create, Mw: adminOnly},
		{Method: http.MethodPost, Path: "/coupons", Handler: h.Coupons.Create, Mw: adminOnly},
	})
}

func root(c *gin.Context) {
	c.String(http.StatusOK, "building management is running")
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
			h = chainHandlers(append(r.Mw[:len(r.Mw):len(r.Mw)], r.Handler)...)
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
