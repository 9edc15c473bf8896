package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"airline-marketplace/authority/internal/api"
	"airline-marketplace/authority/internal/common"
	"airline-marketplace/authority/internal/db"
	"airline-marketplace/authority/internal/logging"
	"airline-marketplace/authority/internal/metrics"
	"airline-marketplace/authority/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
	}

	if err := logging.Init(appEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Booking authority starting up",
		"environment", appEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	// Connect to DB with sqlx (health check + analytics)
	if err := db.InitPostgres(); err != nil {
		logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (sqlx): %v", err)
	}
	logging.Info("Connected to Postgres (sqlx)")

	// Connect to DB with GORM and migrate
	orm, err := db.InitPostgresORM(db.DSN())
	if err != nil {
		logging.Error("Failed to connect to Postgres (GORM)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (GORM): %v", err)
	}
	logging.Info("Connected to Postgres (GORM)")

	// Cache backend: Redis when configured, in-memory otherwise
	var cacheSvc common.CacheInterface
	if os.Getenv("REDIS_HOST") != "" {
		redisCache, err := common.NewRedisCacheService()
		if err != nil {
			logging.Error("Failed to connect to Redis, falling back to in-memory cache", "error", err.Error())
			cacheSvc = common.NewCacheService(300, 600)
		} else {
			cacheSvc = redisCache
			logging.Info("Using Redis cache")
		}
	} else {
		cacheSvc = common.NewCacheService(300, 600)
		logging.Info("Using in-memory cache")
	}
	defer cacheSvc.Close()

	metricsReg := metrics.NewMetricsRegistry()
	notifier := common.NewPartnerNotifier()

	deps := api.InitDependencies(orm, db.DB, cacheSvc, notifier, metricsReg)
	router := routes.RegisterRoutes(deps, metricsReg)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logging.Info("Server starting",
		"port", port,
		"environment", appEnv,
	)

	log.Printf("Starting server on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
