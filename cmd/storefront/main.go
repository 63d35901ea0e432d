package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	gorm_mysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	cartapp "github.com/wyfcoding/voguevault/internal/cart/application"
	cartdomain "github.com/wyfcoding/voguevault/internal/cart/domain"
	carthttp "github.com/wyfcoding/voguevault/internal/cart/interfaces/http"
	catalogapp "github.com/wyfcoding/voguevault/internal/catalog/application"
	catalogdomain "github.com/wyfcoding/voguevault/internal/catalog/domain"
	catalogmemory "github.com/wyfcoding/voguevault/internal/catalog/infrastructure/persistence/memory"
	catalogmysql "github.com/wyfcoding/voguevault/internal/catalog/infrastructure/persistence/mysql"
	cataloghttp "github.com/wyfcoding/voguevault/internal/catalog/interfaces/http"
	identityapp "github.com/wyfcoding/voguevault/internal/identity/application"
	identitydomain "github.com/wyfcoding/voguevault/internal/identity/domain"
	identitymemory "github.com/wyfcoding/voguevault/internal/identity/infrastructure/persistence/memory"
	identitymysql "github.com/wyfcoding/voguevault/internal/identity/infrastructure/persistence/mysql"
	identityhttp "github.com/wyfcoding/voguevault/internal/identity/interfaces/http"
	orderapp "github.com/wyfcoding/voguevault/internal/order/application"
	orderdomain "github.com/wyfcoding/voguevault/internal/order/domain"
	ordermysql "github.com/wyfcoding/voguevault/internal/order/infrastructure/persistence/mysql"
	ordersnapshot "github.com/wyfcoding/voguevault/internal/order/infrastructure/persistence/snapshot"
	orderhttp "github.com/wyfcoding/voguevault/internal/order/interfaces/http"
	"github.com/wyfcoding/voguevault/internal/storage"
	wishlistapp "github.com/wyfcoding/voguevault/internal/wishlist/application"
	wishlisthttp "github.com/wyfcoding/voguevault/internal/wishlist/interfaces/http"
	"github.com/wyfcoding/voguevault/pkg/config"
	"github.com/wyfcoding/voguevault/pkg/logger"
	"github.com/wyfcoding/voguevault/pkg/metrics"
	"github.com/wyfcoding/voguevault/pkg/middleware"
	"github.com/wyfcoding/voguevault/pkg/mq"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "configs/config.toml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("load config failed: %v", err))
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		FilePath:   cfg.Logger.FilePath,
		MaxSize:    cfg.Logger.MaxSize,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAge:     cfg.Logger.MaxAge,
		Compress:   cfg.Logger.Compress,
		WithCaller: cfg.Logger.WithCaller,
	}); err != nil {
		panic(fmt.Sprintf("init logger failed: %v", err))
	}

	ctx := context.Background()
	logger.Info(ctx, "Starting storefront service",
		"version", cfg.Version, "environment", cfg.Environment)

	// 快照存储后端
	var store storage.Store
	switch cfg.Storage.Backend {
	case "redis":
		redisStore, err := storage.NewRedisStore(storage.RedisConfig{
			Host:        cfg.Redis.Host,
			Port:        cfg.Redis.Port,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			MaxPoolSize: cfg.Redis.MaxPoolSize,
			KeyPrefix:   cfg.Storage.KeyPrefix,
		})
		if err != nil {
			logger.Fatal(ctx, "Failed to connect to Redis storage", "error", err)
		}
		defer redisStore.Close()
		store = redisStore
	default:
		store = storage.NewFileStore(cfg.Storage.Dir)
	}

	// 仓储层
	var (
		productRepo catalogdomain.ProductRepository
		userRepo    identitydomain.UserRepository
		orderRepo   orderdomain.OrderRepository
	)
	switch cfg.Database.Driver {
	case "mysql":
		db, err := gorm.Open(gorm_mysql.Open(cfg.Database.DSN), &gorm.Config{})
		if err != nil {
			logger.Fatal(ctx, "Failed to connect to database", "error", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			logger.Fatal(ctx, "Failed to access database pool", "error", err)
		}
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)

		if err := db.AutoMigrate(&catalogmysql.ProductPO{}, &identitymysql.UserPO{}, &ordermysql.OrderPO{}); err != nil {
			logger.Fatal(ctx, "Failed to migrate database", "error", err)
		}

		productRepo = catalogmysql.NewProductRepository(db)
		userRepo = identitymysql.NewUserRepository(db)
		orderRepo = ordermysql.NewOrderRepository(db)
	default:
		productRepo, err = catalogmemory.NewProductRepository()
		if err != nil {
			logger.Fatal(ctx, "Failed to load seeded products", "error", err)
		}
		userRepo, err = identitymemory.NewUserRepository()
		if err != nil {
			logger.Fatal(ctx, "Failed to load seeded users", "error", err)
		}
		orderRepo = ordersnapshot.NewOrderRepository(store)
	}

	// 事件发布（可选）
	var producer *mq.KafkaProducer
	if cfg.Kafka.Enabled {
		producer, err = mq.NewProducer(mq.KafkaConfig{
			Brokers:      cfg.Kafka.Brokers,
			MaxRetries:   cfg.Kafka.MaxRetries,
			RetryBackoff: cfg.Kafka.RetryBackoff,
		})
		if err != nil {
			logger.Fatal(ctx, "Failed to create kafka producer", "error", err)
		}
		defer producer.Close()
	}
	var (
		identityPublisher identitydomain.EventPublisher
		cartPublisher     cartdomain.EventPublisher
		orderPublisher    orderdomain.EventPublisher
	)
	if producer != nil {
		identityPublisher = producer
		cartPublisher = producer
		orderPublisher = producer
	}

	// 应用服务
	catalogService := catalogapp.NewCatalogQueryService(productRepo)
	identityService := identityapp.NewIdentityService(userRepo, store, identityPublisher)
	cartService := cartapp.NewCartService(ctx, store, cartPublisher)
	wishlistService := wishlistapp.NewWishlistService(ctx, store)
	orderService := orderapp.NewOrderService(orderRepo, identityService, orderPublisher)

	// 指标
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.ServiceName)
		go func() {
			if err := m.Serve(cfg.Metrics.Port, cfg.Metrics.Path); err != nil && err != http.ErrServerClosed {
				logger.Error(ctx, "Metrics server stopped", "error", err)
			}
		}()
	}

	// HTTP 路由
	if cfg.Environment == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.GinRecoveryMiddleware(), middleware.GinLoggingMiddleware())
	if m != nil {
		router.Use(middleware.GinMetricsMiddleware(m))
	}
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": cfg.ServiceName})
	})

	root := router.Group("")
	cataloghttp.NewCatalogHandler(catalogService).RegisterRoutes(root)
	identityhttp.NewIdentityHandler(identityService).RegisterRoutes(root)
	carthttp.NewCartHandler(cartService, catalogService, m).RegisterRoutes(root)
	wishlisthttp.NewWishlistHandler(wishlistService, catalogService).RegisterRoutes(root)
	orderhttp.NewOrderHandler(orderService, cartService, m).RegisterRoutes(root)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info(ctx, "HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(ctx, "HTTP server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(ctx, "Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "HTTP server shutdown failed", "error", err)
	}
	logger.Info(ctx, "Server exited")
}
