package main

import (
	"context"
	"log"
	"net/http"

	"WattChat.influxDB/internal/config"
	"WattChat.influxDB/internal/controller"
	"WattChat.influxDB/internal/middleware"
	"WattChat.influxDB/internal/repository"
	"WattChat.influxDB/internal/routes"
	"WattChat.influxDB/internal/service"
	"github.com/go-redis/redis/v8"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/rs/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Initialize InfluxDB client and check the connection health
	influxClient := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	health, err := influxClient.Health(context.Background())
	if err != nil {
		log.Fatalf("Error connecting to InfluxDB: %v", err)
	}
	if health.Status != "pass" {
		log.Fatalf("InfluxDB health check failed: %v", health.Message)
	}
	log.Println("Successfully connected to InfluxDB!")

	// Initialize Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		log.Fatal("Could not connect to Redis:", err)
	}
	log.Println("Connected to Redis successfully!")

	// Initialize repositories, services, and controllers
	telemetryRepo := repository.NewInfluxTelemetryRepository(influxClient, cfg.InfluxDBOrg, cfg.InfluxDBBucket)
	deviceRepo := repository.NewRedisDeviceRepository(redisClient)

	queryService := service.NewQueryService(deviceRepo, telemetryRepo)
	deviceService := service.NewDeviceService(deviceRepo, telemetryRepo)
	telemetryService := service.NewTelemetryService(deviceRepo, telemetryRepo)

	queryController := controller.NewQueryController(queryService)
	deviceController := controller.NewDeviceController(deviceService, telemetryService)

	// JWT middleware
	auth, err := middleware.NewAuthenticator(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)
	if err != nil {
		log.Fatalf("Error building JWT middleware: %v", err)
	}

	// Set up routes
	router := routes.SetupRouter(auth, queryController, deviceController)

	// CORS setup
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handler := c.Handler(router)

	// Start the HTTP server
	log.Printf("Server is running on port %s...", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatal("Error starting server:", err)
	}
}
