package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/tamsou/portfolio-backend/internal/config"
	"github.com/tamsou/portfolio-backend/internal/handler"
	"github.com/tamsou/portfolio-backend/internal/middleware"
	"github.com/tamsou/portfolio-backend/internal/repository"
	"github.com/tamsou/portfolio-backend/internal/service"
	"github.com/tamsou/portfolio-backend/pkg/database"
	"github.com/tamsou/portfolio-backend/pkg/email"
	"github.com/tamsou/portfolio-backend/pkg/logger"
	"github.com/tamsou/portfolio-backend/pkg/payment"
	"github.com/tamsou/portfolio-backend/pkg/qrcode"
	"github.com/tamsou/portfolio-backend/pkg/storage"
	"github.com/tamsou/portfolio-backend/pkg/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	logger.Init()

	cfg := config.LoadConfig()

	// Initialize database (runs migrations)
	db := database.NewDatabase()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	albumRepo := repository.NewAlbumRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	codeRepo := repository.NewDownloadCodeRepository(db)

	// Storage service
	r2Storage, err := storage.NewCloudflareStorage(cfg)
	if err != nil {
		log.Fatal("Failed to initialize R2 storage:", err)
	}

	// Email service
	emailService := email.NewEmailService()

	// Services
	authService := service.NewAuthService(userRepo, emailService)
	albumService := service.NewAlbumService(albumRepo)
	photoService := service.NewPhotoService(photoRepo, albumRepo, r2Storage)
	downloadService := service.NewDownloadService(codeRepo, purchaseRepo)

	// Stripe service
	stripeService := payment.NewStripeService(cfg.Stripe.SecretKey)
	paymentService := service.NewPaymentService(stripeService, userRepo, purchaseRepo)

	// QR service
	qrService := qrcode.NewQRService(cfg.PublicURL + "/profile/redeem?code=")

	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	userHandler := handler.NewUserHandler(authService)
	albumHandler := handler.NewAlbumHandler(albumService)
	adminHandler := handler.NewAdminHandler(authService, albumService, photoService, validator)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	profileHandler := handler.NewProfileHandler(downloadService, qrService, validator)
	contactHandler := handler.NewContactHandler(emailService, validator)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     os.Getenv("CORS_ORIGINS"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowCredentials: true,
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/verify-email", authHandler.VerifyEmail)

	// Public gallery routes
	api.Get("/albums", albumHandler.GetAlbums)
	api.Get("/albums/:id", albumHandler.GetAlbum)

	// Shop catalog (public)
	api.Get("/shop/products", paymentHandler.GetProducts)

	// Stripe webhook (public, signature-verified)
	api.Post("/payments/webhook", paymentHandler.HandleStripeWebhook)

	// Contact form (public)
	api.Post("/contact", contactHandler.SendMessage)

	// Admin routes (admin role token required past login)
	admin := api.Group("/admin")
	admin.Post("/login", adminHandler.Login)
	admin.Use(middleware.AdminMiddleware())
	admin.Post("/albums", adminHandler.CreateAlbum)
	admin.Post("/albums/:albumId/photos", adminHandler.UploadPhoto)

	// Protected routes
	api.Use(middleware.AuthMiddleware())
	{
		user := api.Group("/user")
		user.Get("/profile", userHandler.GetMyProfile)

		api.Post("/shop/checkout/:productId", paymentHandler.CreateCheckoutSession)

		payments := api.Group("/payments")
		payments.Get("/history", paymentHandler.GetPurchaseHistory)

		profile := api.Group("/profile")
		profile.Get("/codes", profileHandler.GetDownloadCodes)
		profile.Post("/codes", profileHandler.GenerateDownloadCode)
		profile.Post("/codes/redeem", profileHandler.RedeemDownloadCode)
		profile.Get("/codes/:code/qr", profileHandler.GetDownloadCodeQR)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Fatal(app.Listen(":" + port))
}
