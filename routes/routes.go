package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sandeepkd1824/tummy-tap/configs"
	"github.com/Sandeepkd1824/tummy-tap/controllers"
	"github.com/Sandeepkd1824/tummy-tap/middlewares"
	"github.com/Sandeepkd1824/tummy-tap/pkg/mailer"
	"github.com/Sandeepkd1824/tummy-tap/repository"
	"github.com/Sandeepkd1824/tummy-tap/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	otpRepo := repository.NewOTPRepository(db)
	addrRepo := repository.NewAddressRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	var m mailer.Mailer = mailer.LogMailer{}
	if cfg.SMTPHost != "" {
		m = mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	}

	// Services
	authSvc := services.NewAuthService(userRepo, otpRepo, m, cfg.JWTSecret, cfg.JWTTTL)
	addrSvc := services.NewAddressService(db, addrRepo)
	restSvc := services.NewRestaurantService(restRepo)
	menuSvc := services.NewMenuService(menuRepo, restRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, addrRepo, restRepo, cartSvc)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	addrCtrl := controllers.NewAddressController(addrSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	ownerOrderCtrl := controllers.NewOwnerOrderController(orderSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/verify-otp", authCtrl.VerifyOTP)
		a.POST("/resend-otp", authCtrl.ResendOTP)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Catalog (public). nearby must be registered before :id.
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/nearby", restCtrl.Nearby)
	r.GET("/restaurants/:id", restCtrl.Detail)

	// Addresses
	addr := r.Group("/addresses", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		addr.GET("", addrCtrl.List)
		addr.POST("", addrCtrl.Create)
		addr.GET("/:id", addrCtrl.Get)
		addr.PUT("/:id", addrCtrl.Update)
		addr.DELETE("/:id", addrCtrl.Delete)
		addr.POST("/:id/default", addrCtrl.SetDefault)
	}

	// Cart
	cart := r.Group("/cart", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/add_item", cartCtrl.AddItem)
		cart.POST("/remove_item", cartCtrl.RemoveItem)
		cart.DELETE("/delete_item/:id", cartCtrl.DeleteLine)
		cart.POST("/clear", cartCtrl.Clear)
	}

	// Orders
	orders := r.Group("/orders", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		orders.GET("", orderCtrl.List)
		orders.GET("/checkout", orderCtrl.Checkout)
		orders.POST("/place", orderCtrl.Place)
		orders.GET("/:id", orderCtrl.Detail)
		// ownership is checked in the service, admins pass through
		orders.PATCH("/:id/status", orderCtrl.UpdateStatus)
	}

	// Partner Restaurant (owner/admin)
	partnerRest := r.Group("/partner/restaurant", middlewares.AuthMiddleware(cfg.JWTSecret, "owner", "admin"))
	{
		partnerRest.GET("/orders", ownerOrderCtrl.List)
		partnerRest.POST("/menu", menuCtrl.CreateItem)
		partnerRest.PATCH("/menu/:id", menuCtrl.UpdateItem)
	}
}
