package main

import (
	"context"
	"gin-storefront/controllers"
	"gin-storefront/infra"
	"gin-storefront/mail"
	"gin-storefront/middlewares"
	"gin-storefront/models"
	"gin-storefront/payments"
	"gin-storefront/repositories"
	"gin-storefront/services"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB) *gin.Engine {
	userRepository := repositories.NewUserRepository(db)
	mailer := mail.NewSMTPMailer(mail.NewConfigFromEnv())
	authService := services.NewAuthService(userRepository, mailer)
	authController := controllers.NewAuthController(authService)

	itemRepository := repositories.NewItemRepository(db)
	itemService := services.NewItemService(itemRepository)
	itemController := controllers.NewItemController(itemService)

	cartRepository := repositories.NewCartRepository(db)
	cartService := services.NewCartService(cartRepository)
	cartController := controllers.NewCartController(cartService)

	gateway := payments.NewHTTPGateway(payments.NewConfigFromEnv(), &http.Client{Timeout: 30 * time.Second})
	orderRepository := repositories.NewOrderRepository(db)
	orderService := services.NewOrderService(orderRepository, cartRepository, userRepository, gateway)
	orderController := controllers.NewOrderController(orderService)

	r := gin.Default()
	r.Use(cors.Default())

	authRouter := r.Group("/auth")
	authRouter.POST("/signup", authController.Signup)
	authRouter.POST("/signin", authController.Signin)
	authRouter.POST("/signout", authController.Signout)
	authRouter.POST("/request-reset", authController.RequestPasswordReset)
	authRouter.POST("/reset-password", authController.ResetPassword)
	authRouterWithAuth := r.Group("/auth", middlewares.AuthMiddleware(authService))
	authRouterWithAuth.GET("/me", authController.Me)

	userRouter := r.Group("/users",
		middlewares.AuthMiddleware(authService),
		middlewares.RequireAnyPermission(models.PermissionAdmin, models.PermissionPermissionUpdate))
	userRouter.PUT("/:id/permissions", authController.UpdatePermissions)

	itemRouter := r.Group("/items")
	itemRouter.GET("", itemController.FindAll)
	itemRouter.GET("/:id", itemController.FindById)
	itemRouterWithAuth := r.Group("/items", middlewares.AuthMiddleware(authService))
	itemRouterWithAuth.POST("", itemController.Create)
	itemRouterWithAuth.PUT("/:id", itemController.Update)
	itemRouterWithAuth.DELETE("/:id", itemController.Delete)

	cartRouter := r.Group("/cart", middlewares.AuthMiddleware(authService))
	cartRouter.GET("", cartController.FindAll)
	cartRouter.POST("", cartController.Add)
	cartRouter.DELETE("/:id", cartController.Remove)

	orderRouter := r.Group("/orders", middlewares.AuthMiddleware(authService))
	orderRouter.GET("", orderController.FindAll)
	orderRouter.GET("/:id", orderController.FindById)
	orderRouter.POST("", orderController.Create)

	return r
}

func initDB() *gorm.DB {
	infra.Initialize()
	db := infra.SetupDB()

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := db.AutoMigrate(
			&models.User{},
			&models.Item{},
			&models.CartItem{},
			&models.Order{},
			&models.OrderItem{},
		); err != nil {
			panic("Failed to migrate database")
		}
	}

	return db
}

func main() {
	db := initDB()
	r := setupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
