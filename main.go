package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carediary/config"
	"carediary/handler"
	"carediary/middleware"
	"carediary/repository"
	"carediary/services"
	"carediary/usecase"
	"carediary/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds everything the router needs
type App struct {
	Config  *config.Config
	Logger  *zap.Logger
	Store   repository.KVStore
	Repo    *repository.DailyLogRepo
	Diary   *usecase.Diary
	Encoder *services.PhotoEncoder
	Share   *services.ShareService
	Tokens  *services.TokenService
}

func newApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	store, err := repository.OpenKVStore(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Database.Driver, err)
	}
	repo := repository.NewDailyLogRepo(store, cfg.Database.Namespace, logger)

	diary, outcome := usecase.NewDiary(ctx, usecase.DiaryOptions{
		Store:    repo,
		Schedule: usecase.NewMedicationSchedule(cfg.MedicationStart, cfg.Location, cfg.MedicationTaskID),
		Clock:    usecase.RealClock{},
		PetName:  cfg.PetName,
		Logger:   logger,
	})
	if outcome.Notice != "" {
		logger.Warn("Diary opened with a notice", zap.String("notice", outcome.Notice))
	}

	var sharer services.Sharer
	if cfg.TelegramToken != "" {
		telegram, err := services.NewTelegramSharer(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			logger.Warn("Telegram sharing disabled", zap.Error(err))
		} else {
			sharer = telegram
		}
	}

	return &App{
		Config:  cfg,
		Logger:  logger,
		Store:   store,
		Repo:    repo,
		Diary:   diary,
		Encoder: services.NewPhotoEncoder(cfg.MaxPhotoBytes),
		Share:   services.NewShareService(sharer, logger),
		Tokens:  services.NewTokenService(cfg.JWTSecretKey, cfg.JWTExpirationTime, cfg.ShareLinkTTL),
	}, nil
}

func setupRouter(app *App) *gin.Engine {
	router := gin.New()
	diary := app.Diary

	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.RequestLogger(app.Logger))
	router.Use(middleware.EnhancedRecoveryMiddleware(app.Logger))
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware(app.Config.CORSOrigin))
	// base64 data URLs are a third larger than the photo itself
	router.Use(middleware.RequestSizeLimiter(app.Config.MaxPhotoBytes*4/3 + 64<<10))

	router.GET("/health", handler.NewHealthHandler(app.Repo, app.Store.Backend(), diary).Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/shared/:token", func(c *gin.Context) {
		handler.SharedSummaryHandler(c, diary, app.Tokens)
	})

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		public.POST("/auth/login", func(c *gin.Context) {
			handler.LoginHandler(c, app.Config.AccessPinHash, app.Tokens)
		})
	}

	// Protected routes (authentication required when an access PIN is set)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(app.Tokens, app.Config.AuthEnabled()))
	protected.Use(middleware.CacheControlMiddleware("no-store"))
	{
		protected.GET("/tasks", handler.GetTasksHandler)
		protected.GET("/medication/:date", middleware.ValidateDateParam("date"), func(c *gin.Context) {
			handler.GetMedicationHandler(c, diary.Schedule())
		})
		protected.GET("/days/:date", middleware.ValidateDateParam("date"), func(c *gin.Context) {
			handler.GetDayHandler(c, diary)
		})

		d := protected.Group("/diary")
		{
			d.GET("", func(c *gin.Context) {
				handler.GetDiaryHandler(c, diary)
			})

			// Active date
			d.PUT("/date", func(c *gin.Context) {
				handler.SelectDateHandler(c, diary)
			})
			d.POST("/date/shift", func(c *gin.Context) {
				handler.ShiftDateHandler(c, diary)
			})

			// Entries
			d.POST("/tasks/:id/toggle", func(c *gin.Context) {
				handler.ToggleTaskHandler(c, diary)
			})
			d.POST("/counters/:counter", func(c *gin.Context) {
				handler.AdjustCounterHandler(c, diary)
			})
			d.PUT("/notes", func(c *gin.Context) {
				handler.SetNotesHandler(c, diary)
			})
			d.POST("/photos", func(c *gin.Context) {
				handler.AddPhotoHandler(c, diary, app.Encoder)
			})
			d.DELETE("/photos/:index", func(c *gin.Context) {
				handler.RemovePhotoHandler(c, diary)
			})

			// Sharing
			d.GET("/summary", func(c *gin.Context) {
				handler.GetSummaryHandler(c, diary)
			})
			d.POST("/share", func(c *gin.Context) {
				handler.ShareHandler(c, diary, app.Share)
			})
			d.POST("/share-link", func(c *gin.Context) {
				handler.CreateShareLinkHandler(c, diary, app.Tokens)
			})
		}
	}

	return router
}

func main() {
	hashPin := flag.String("hash-pin", "", "print the ACCESS_PIN_HASH value for a PIN and exit")
	flag.Parse()

	if *hashPin != "" {
		hash, err := services.HashPin(*hashPin)
		if err != nil {
			log.Fatalf("Failed to hash PIN: %v", err)
		}
		fmt.Println(hash)
		return
	}

	logger, err := utils.InitLogger(os.Getenv("GO_ENV"))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	utils.InitValidator()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	app, err := newApp(ctx, cfg, logger)
	cancel()
	if err != nil {
		logger.Fatal("Failed to start", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           setupRouter(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Server starting",
			zap.String("addr", srv.Addr),
			zap.String("store", app.Store.Backend()),
			zap.Bool("auth", cfg.AuthEnabled()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	sig := <-signalChan
	logger.Info("Shutdown requested", zap.String("signal", sig.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
	if err := app.Store.Close(shutdownCtx); err != nil {
		logger.Error("Failed to close store", zap.Error(err))
	}
	logger.Info("Server shutdown complete")
}
