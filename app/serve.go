package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/food-reels/domain"
	"github.com/Guyuepp/food-reels/internal/auth"
	"github.com/Guyuepp/food-reels/internal/config"
	"github.com/Guyuepp/food-reels/internal/metrics"
	"github.com/Guyuepp/food-reels/internal/repository"
	mysqlRepo "github.com/Guyuepp/food-reels/internal/repository/mysql"
	redisRepo "github.com/Guyuepp/food-reels/internal/repository/redis"
	"github.com/Guyuepp/food-reels/internal/rest"
	"github.com/Guyuepp/food-reels/internal/rest/middleware"
	"github.com/Guyuepp/food-reels/internal/storage"
	authUsecase "github.com/Guyuepp/food-reels/internal/usecase/auth"
	"github.com/Guyuepp/food-reels/internal/usecase/food"
	"github.com/Guyuepp/food-reels/internal/usecase/toggle"
	"github.com/Guyuepp/food-reels/internal/workers"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the reconciliation worker",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg)
	},
}

func serve(ctx context.Context, cfg *config.Config) error {
	db, closeDB, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	client, err := openCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Errorf("got error when closing the cache connection: %v", err)
		}
	}()

	content, err := storage.NewS3Store(ctx, storage.S3Options{
		Region:   cfg.S3Region,
		Bucket:   cfg.S3Bucket,
		Prefix:   cfg.S3Prefix,
		BaseURL:  cfg.S3BaseURL,
		Endpoint: cfg.S3Endpoint,
	})
	if err != nil {
		return err
	}

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	partnerRepo := mysqlRepo.NewFoodPartnerRepository(db)
	membershipRepo := mysqlRepo.NewMembershipRepository(db)

	// Food相关的三层架构: DB层, Cache层, Repository协调层
	foodDBRepo := mysqlRepo.NewFoodDBRepository(db)
	foodCache := redisRepo.NewFoodCache(client)
	foodRepo := repository.NewFoodRepository(foodDBRepo, foodCache, partnerRepo)

	bloomRepo := redisRepo.NewRedisBloomRepo(client, cfg.BloomBitSize)
	locker := redisRepo.NewKeyLocker(client, redisRepo.LockOptions{
		Expiry:     cfg.LockExpiry,
		Tries:      cfg.LockTries,
		RetryDelay: cfg.LockRetryDelay,
	})

	// Build service Layer
	reconciler := toggle.NewReconciler(membershipRepo, foodDBRepo)
	reconcileWorker := workers.NewReconcileWorker(reconciler, workers.ReconcileOptions{
		QueueSize:     cfg.ReconcileQueueSize,
		FlushInterval: cfg.ReconcileFlushInterval,
		SweepInterval: cfg.ReconcileSweepInterval,
		SweepBatch:    cfg.ReconcileBatchSize,
	})
	engine := toggle.NewEngine(membershipRepo, locker, reconcileWorker)

	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry())
	authSvc := authUsecase.NewService(userRepo, partnerRepo, tokens)
	foodSvc := food.NewService(foodRepo, partnerRepo, engine, content, bloomRepo)

	// Prepare bloom filter
	if err := foodSvc.InitBloomFilter(ctx); err != nil {
		return fmt.Errorf("failed to init bloom filter: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	route := newRouter(cfg, authSvc, foodSvc, rest.NewHealthHandler(sqlDB))

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           route,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		reconcileWorker.Start(gctx)
		return nil
	})
	g.Go(func() error {
		logrus.Infof("Server is running on %s", cfg.ServerAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logrus.Info("Shutdown signal received, stopping server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	logrus.Info("Server exiting")
	return err
}

func newRouter(cfg *config.Config, authSvc domain.AuthUsecase, foodSvc domain.FoodUsecase, health *rest.HealthHandler) *gin.Engine {
	route := gin.Default()
	route.Use(metrics.GinMiddleware())
	route.Use(middleware.CORS(cfg.AllowedOrigins))
	route.Use(middleware.SetRequestContextWithTimeout(cfg.Timeout()))

	authHandler := rest.NewAuthHandler(authSvc, cfg.JWTExpiry(), cfg.CookieSecure)
	foodHandler := rest.NewFoodHandler(foodSvc)
	userOnly := middleware.Authenticate(authSvc, domain.PrincipalUser)
	partnerOnly := middleware.Authenticate(authSvc, domain.PrincipalPartner)

	route.GET("/", health.Hello)
	route.GET("/healthz", health.Healthz)
	route.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := route.Group("/api/v1")

	userAuth := api.Group("/auth/user")
	{
		userAuth.POST("/register", authHandler.RegisterUser)
		userAuth.POST("/login", authHandler.LoginUser)
		userAuth.POST("/logout", authHandler.Logout)
		userAuth.GET("/user/:id", authHandler.GetUser)
		userAuth.GET("/me", userOnly, authHandler.Me)
	}

	partnerAuth := api.Group("/auth/partner")
	{
		partnerAuth.POST("/register", authHandler.RegisterPartner)
		partnerAuth.POST("/login", authHandler.LoginPartner)
		partnerAuth.POST("/logout", authHandler.Logout)
	}

	foods := api.Group("/food")
	{
		foods.GET("/", userOnly, foodHandler.FetchFood)
		foods.POST("/like", userOnly, foodHandler.Like)
		foods.GET("/save", userOnly, foodHandler.FetchSaved)
		foods.POST("/save", userOnly, foodHandler.Save)
		foods.GET("/partner/:id", userOnly, foodHandler.GetPartner)
		foods.POST("/create", partnerOnly, foodHandler.Create)
	}

	return route
}
