package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lotuspos/counter/internal/application/service"
	"github.com/lotuspos/counter/internal/config"
	"github.com/lotuspos/counter/internal/presentation/http/handler"
	"github.com/lotuspos/counter/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Session    *handler.SessionHandler
	Board      *handler.BoardHandler
	Payment    *handler.PaymentHandler
	Purchase   *handler.PurchaseHandler
	MasterData *handler.MasterDataHandler
	Report     *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg      *config.Config
	Sessions *service.SessionService
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		// Login is the only route available before a session exists
		registerSessionRoutes(v1, h)

		protected := v1.Group("")
		protected.Use(middleware.RequireSession(deps.Sessions))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerBoardRoutes(protected, h)
		registerPaymentRoutes(protected, h)
		registerPurchaseRoutes(protected, h)
		registerMasterDataRoutes(protected, h)
		registerReportRoutes(protected, h, deps)
	}

	return router
}

func registerSessionRoutes(v1 *gin.RouterGroup, h *Handlers) {
	session := v1.Group("/session")
	{
		session.POST("/login", h.Session.Login)
		session.POST("/logout", h.Session.Logout)
		session.GET("/status", h.Session.Status)
		session.POST("/report/login", h.Session.ReportLogin)
		session.POST("/report/logout", h.Session.ReportLogout)
	}
}

func registerBoardRoutes(g *gin.RouterGroup, h *Handlers) {
	board := g.Group("/board")
	{
		board.GET("", h.Board.Snapshot)
		board.POST("/refresh", h.Board.Refresh)
		board.POST("/section", h.Board.SelectSection)
		board.POST("/tables/:id/activate", h.Board.Activate)
		board.POST("/keys", h.Board.KeyInput)
	}
}

func registerPaymentRoutes(g *gin.RouterGroup, h *Handlers) {
	payment := g.Group("/payment")
	{
		payment.GET("", h.Payment.Panel)
		payment.POST("/open", h.Payment.Open)
		payment.PATCH("/amounts", h.Payment.SetAmounts)
		payment.PATCH("/customer", h.Payment.SetCustomer)
		payment.POST("/submit", h.Payment.Submit)
		payment.DELETE("", h.Payment.Close)
	}
}

func registerPurchaseRoutes(g *gin.RouterGroup, h *Handlers) {
	purchase := g.Group("/purchase")
	{
		purchase.GET("", h.Purchase.View)
		purchase.PUT("/header", h.Purchase.SetHeader)
		purchase.POST("/lines", h.Purchase.AddLine)
		purchase.POST("/lines/:index/edit", h.Purchase.BeginEdit)
		purchase.DELETE("/edit", h.Purchase.CancelEdit)
		purchase.POST("/lines/:index/delete", h.Purchase.MarkDelete)
		purchase.POST("/delete/confirm", h.Purchase.ConfirmDelete)
		purchase.DELETE("/delete", h.Purchase.CancelDelete)
		purchase.PATCH("/discount", h.Purchase.SetDiscount)
		purchase.PATCH("/paid", h.Purchase.SetPaidAmount)
		purchase.GET("/stock", h.Purchase.StockQty)
		purchase.POST("/overlay", h.Purchase.OpenOverlay)
		purchase.DELETE("/overlay", h.Purchase.CloseOverlay)
		purchase.POST("/save", h.Purchase.Save)
	}
}

func registerMasterDataRoutes(g *gin.RouterGroup, h *Handlers) {
	items := g.Group("/items")
	{
		items.GET("", h.MasterData.ListItems)
		items.POST("", h.MasterData.CreateItem)
		items.PUT("/:id", h.MasterData.UpdateItem)
	}

	units := g.Group("/units")
	{
		units.GET("", h.MasterData.ListUnits)
		units.GET("/:id", h.MasterData.ResolveUnit)
		units.POST("", h.MasterData.CreateUnit)
		units.PATCH("/:id", h.MasterData.UpdateUnit)
		units.DELETE("/:id", h.MasterData.DeleteUnit)
	}

	gst := g.Group("/gst")
	{
		gst.GET("", h.MasterData.ListGstRates)
		gst.POST("", h.MasterData.CreateGstRate)
		gst.DELETE("/:id", h.MasterData.DeleteGstRate)
	}

	vendors := g.Group("/vendors")
	{
		vendors.GET("", h.MasterData.ListVendors)
		vendors.POST("", h.MasterData.CreateVendor)
		vendors.PATCH("/:id", h.MasterData.UpdateVendor)
		vendors.DELETE("/:id", h.MasterData.DeleteVendor)
	}
}

func registerReportRoutes(g *gin.RouterGroup, h *Handlers, deps *Deps) {
	report := g.Group("/report")
	report.Use(middleware.RequireReportAccess(deps.Sessions))
	{
		report.GET("/menu", h.Report.Menu)
		report.GET("/menu/export", h.Report.Export)
		report.POST("/menu/print", h.Report.Print)
	}
}
