package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	animalUsecases "github.com/digitalcoban/coban/internal/application/animal/usecases"
	areaUsecases "github.com/digitalcoban/coban/internal/application/area/usecases"
	subUsecases "github.com/digitalcoban/coban/internal/application/subscription/usecases"
	userUsecases "github.com/digitalcoban/coban/internal/application/user/usecases"
	"github.com/digitalcoban/coban/internal/domain/billing"
	"github.com/digitalcoban/coban/internal/infrastructure/auth"
	"github.com/digitalcoban/coban/internal/infrastructure/config"
	"github.com/digitalcoban/coban/internal/infrastructure/payment"
	"github.com/digitalcoban/coban/internal/infrastructure/repository"
	"github.com/digitalcoban/coban/internal/interfaces/http/handlers"
	"github.com/digitalcoban/coban/internal/interfaces/http/middleware"
	"github.com/digitalcoban/coban/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine              *gin.Engine
	authHandler         *handlers.AuthHandler
	subscriptionHandler *handlers.SubscriptionHandler
	animalHandler       *handlers.AnimalHandler
	areaHandler         *handlers.AreaHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimiter         *middleware.RateLimiter
	allowedOrigins      []string
	log                 logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies wired
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(db, log)
	subscriptionRepo := repository.NewSubscriptionRepository(db, log)
	animalRepo := repository.NewAnimalRepository(db, log)
	areaRepo := repository.NewAreaRepository(db, log)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpDays)
	gateway := payment.NewIyzicoGateway(cfg.Payment, log)
	calculator := billing.NewCalculator(cfg.Subscription.LargeUnitPrice, cfg.Subscription.SmallUnitPrice)

	createTrialUC := subUsecases.NewCreateTrialUseCase(subscriptionRepo, calculator, cfg.Subscription.TrialDays, log)
	getStatusUC := subUsecases.NewGetStatusUseCase(subscriptionRepo, log)
	beginCheckoutUC := subUsecases.NewBeginCheckoutUseCase(subscriptionRepo, userRepo, gateway, log)
	verifyCheckoutUC := subUsecases.NewVerifyCheckoutUseCase(subscriptionRepo, gateway, cfg.Subscription.PeriodYears, log)
	beginRenewalUC := subUsecases.NewBeginRenewalUseCase(subscriptionRepo, userRepo, gateway, log)
	verifyRenewalUC := subUsecases.NewVerifyRenewalUseCase(subscriptionRepo, gateway, cfg.Subscription.PeriodYears, log)
	updateCountsUC := subUsecases.NewUpdateAnimalCountsUseCase(subscriptionRepo, calculator, log)

	registerUC := userUsecases.NewRegisterUseCase(userRepo, hasher, createTrialUC, log)
	loginUC := userUsecases.NewLoginUseCase(userRepo, hasher, jwtSvc, getStatusUC, log)

	registerAnimalUC := animalUsecases.NewRegisterAnimalUseCase(animalRepo, areaRepo, log)
	listAnimalsUC := animalUsecases.NewListAnimalsUseCase(animalRepo, log)
	lookupByQRUC := animalUsecases.NewLookupByQRUseCase(animalRepo, log)
	updateAnimalUC := animalUsecases.NewUpdateAnimalUseCase(animalRepo, areaRepo, log)
	deleteAnimalUC := animalUsecases.NewDeleteAnimalUseCase(animalRepo, log)

	createAreaUC := areaUsecases.NewCreateAreaUseCase(areaRepo, log)
	listAreasUC := areaUsecases.NewListAreasUseCase(areaRepo, log)
	updateAreaUC := areaUsecases.NewUpdateAreaUseCase(areaRepo, log)
	deleteAreaUC := areaUsecases.NewDeleteAreaUseCase(areaRepo, animalRepo, log)

	authHandler := handlers.NewAuthHandler(registerUC, loginUC, getStatusUC, userRepo, log)
	subscriptionHandler := handlers.NewSubscriptionHandler(
		getStatusUC, beginCheckoutUC, verifyCheckoutUC,
		beginRenewalUC, verifyRenewalUC, updateCountsUC, log,
	)
	animalHandler := handlers.NewAnimalHandler(
		registerAnimalUC, listAnimalsUC, lookupByQRUC, updateAnimalUC, deleteAnimalUC, log,
	)
	areaHandler := handlers.NewAreaHandler(createAreaUC, listAreasUC, updateAreaUC, deleteAreaUC, log)

	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, userRepo, log)
	rateLimiter := middleware.NewRateLimiter(redisClient, 100, 1*time.Minute)

	return &Router{
		engine:              engine,
		authHandler:         authHandler,
		subscriptionHandler: subscriptionHandler,
		animalHandler:       animalHandler,
		areaHandler:         areaHandler,
		authMiddleware:      authMiddleware,
		rateLimiter:         rateLimiter,
		allowedOrigins:      cfg.Server.AllowedOrigins,
		log:                 log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", r.rateLimiter.Limit(), r.authHandler.Register)
		auth.POST("/login", r.rateLimiter.Limit(), r.authHandler.Login)
		auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.GetCurrentUser)
	}

	subscription := api.Group("/subscription")
	{
		// Callback targets hit by the payment provider, no auth header
		subscription.GET("/checkout/verify", r.subscriptionHandler.VerifyCheckout)
		subscription.POST("/checkout/verify", r.subscriptionHandler.VerifyCheckout)
		subscription.GET("/renewal/verify", r.subscriptionHandler.VerifyRenewal)
		subscription.POST("/renewal/verify", r.subscriptionHandler.VerifyRenewal)

		authed := subscription.Group("")
		authed.Use(r.authMiddleware.RequireAuth())
		{
			authed.GET("", r.subscriptionHandler.GetStatus)
			authed.POST("/checkout", r.subscriptionHandler.BeginCheckout)
			authed.POST("/renewal", r.subscriptionHandler.BeginRenewal)
			authed.PUT("/animal-counts", r.subscriptionHandler.UpdateAnimalCounts)
		}
	}

	animals := api.Group("/animals")
	animals.Use(r.authMiddleware.RequireAuth())
	{
		animals.POST("", r.animalHandler.Register)
		animals.GET("", r.animalHandler.List)
		animals.GET("/qr/:code", r.animalHandler.LookupByQR)
		animals.PATCH("/:id", r.animalHandler.Update)
		animals.DELETE("/:id", r.animalHandler.Delete)
	}

	areas := api.Group("/areas")
	areas.Use(r.authMiddleware.RequireAuth())
	{
		areas.POST("", r.areaHandler.Create)
		areas.GET("", r.areaHandler.List)
		areas.PATCH("/:id", r.areaHandler.Update)
		areas.DELETE("/:id", r.areaHandler.Delete)
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
