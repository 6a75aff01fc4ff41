package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"padelbook/internal/handler/api"
	"padelbook/internal/handler/middleware"
	"padelbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	invitationHandler *api.InvitationHandler,
	walletHandler *api.WalletHandler,
	companyHandler *api.CompanyHandler,
	userHandler *api.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, bookingHandler, invitationHandler, walletHandler, companyHandler, userHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	invitationHandler *api.InvitationHandler,
	walletHandler *api.WalletHandler,
	companyHandler *api.CompanyHandler,
	userHandler *api.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.GetUserBookings},
				{Method: http.MethodGet, Path: "/open", Handler: bookingHandler.GetOpenBookings},
				{Method: http.MethodPatch, Path: "/:id", Handler: bookingHandler.ModifyBooking},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.CancelBooking},
			})
		}

		invitations := apiGroup.Group("/invitations")
		invitations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(invitations, []route{
				{Method: http.MethodPost, Path: "", Handler: invitationHandler.RequestInvitation},
				{Method: http.MethodGet, Path: "/pending", Handler: invitationHandler.GetPendingInvitations},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: invitationHandler.AcceptInvitation},
				{Method: http.MethodDelete, Path: "/:id", Handler: invitationHandler.RejectInvitation},
			})
		}

		wallet := apiGroup.Group("/wallet")
		wallet.Use(authMiddleware.RequireAuth())
		{
			addRoutes(wallet, []route{
				{Method: http.MethodPost, Path: "", Handler: walletHandler.AdjustWallet},
				{Method: http.MethodGet, Path: "/history", Handler: walletHandler.GetWalletHistory},
			})
		}

		companies := apiGroup.Group("/companies")
		companies.Use(authMiddleware.RequireAuth())
		{
			addRoutes(companies, []route{
				{Method: http.MethodGet, Path: "", Handler: companyHandler.GetCompanies},
				{Method: http.MethodGet, Path: "/nearby", Handler: companyHandler.GetNearbyCompanies},
				{Method: http.MethodGet, Path: "/:name", Handler: companyHandler.GetCompanyByName},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/me", Handler: userHandler.GetSettings},
				{Method: http.MethodPatch, Path: "/me", Handler: userHandler.UpdateProfile},
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
