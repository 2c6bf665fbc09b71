package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campusbridge/campusbridge/handlers"
	"github.com/campusbridge/campusbridge/internal/colleges"
	"github.com/campusbridge/campusbridge/internal/config"
	"github.com/campusbridge/campusbridge/internal/database"
	"github.com/campusbridge/campusbridge/internal/jobs"
	"github.com/campusbridge/campusbridge/internal/sessions"
	"github.com/campusbridge/campusbridge/internal/storage"
	"github.com/campusbridge/campusbridge/internal/tokens"
	"github.com/campusbridge/campusbridge/internal/users"
	"github.com/campusbridge/campusbridge/pkg/logger"
	"github.com/campusbridge/campusbridge/pkg/metrics"
	"github.com/campusbridge/campusbridge/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging level is controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v minio=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.MinIO.Endpoint != "")

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	r.Use(gin.Logger(), gin.Recovery())

	ctx := context.Background()

	// Connect to Redis early so the rate limiter and the access-token
	// blacklist can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := redisClient.Ping(ctx).Err(); err == nil {
			sessions.SetBlacklistClient(redisClient)
			logger.Infof("connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		} else {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		}
	}
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Persistence: Mongo-backed repositories when configured, in-memory
	// fallbacks otherwise so the portal stays usable in dev
	var (
		usersRepo    users.UserRepository
		collegesRepo colleges.Repository
		jobsRepo     jobs.Repository
		sessionsRepo sessions.Repository
		mongoOK      bool
	)
	if cfg.MongoDB.URI != "" {
		// Retry/backoff when connecting to MongoDB to tolerate startup races
		const maxAttempts = 5
		backoff := time.Second
		var client *mongo.Client
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
		} else {
			defer func() { _ = client.Disconnect(ctx) }()
			db := client.Database(cfg.MongoDB.Database)
			usersRepo = users.NewMongoUserRepository(db.Collection("users"))
			collegesRepo = colleges.NewMongoRepository(db.Collection("colleges"))
			jobsRepo = jobs.NewMongoRepository(db.Collection("jobs"))
			sessionsRepo = sessions.NewMongoRepository(db.Collection("sessions"))
			mongoOK = true
		}
	}
	if !mongoOK {
		logger.Warnf("MongoDB unavailable, using in-memory repositories (data is not persisted)")
		usersRepo = users.NewMemoryUserRepository()
		collegesRepo = colleges.NewMemoryRepository()
		jobsRepo = jobs.NewMemoryRepository()
	}
	// Prefer Redis for refresh sessions when available (fast, self-expiring)
	if redisClient != nil {
		sessionsRepo = sessions.NewRedisRepository(redisClient, "session:")
	}
	if sessionsRepo == nil && !mongoOK {
		logger.Fatalf("no session store available: configure MONGODB_URI or REDIS_HOST")
	}

	usersSvc := users.NewService(usersRepo)
	collegesSvc := colleges.NewService(collegesRepo)
	jobsSvc := jobs.NewService(jobsRepo)
	sessionsSvc := sessions.NewService(sessionsRepo)
	parser := tokens.NewParser(cfg)

	// Optional object storage for company logos
	var logos *storage.LogoStore
	if cfg.MinIO.Endpoint != "" {
		logos, err = storage.NewLogoStore(cfg.MinIO)
		if err != nil {
			logger.Warnf("failed to initialize logo storage: %v", err)
			logos = nil
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: 200 only when the critical dependencies are reachable
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{
			"mongo": mongoOK,
			"redis": redisClient != nil,
			"minio": logos != nil,
		}
		if !mongoOK && redisClient == nil {
			ready = false
		}
		status := http.StatusOK
		label := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			label = "not_ready"
		}
		c.JSON(status, gin.H{"status": label, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	handlers.NewAuthHandler(cfg, usersSvc, sessionsSvc, parser).Register(r.Group("/"))
	api := r.Group("/api/v1")
	handlers.NewUserHandler(usersSvc, collegesSvc, parser).Register(api)
	handlers.NewCollegeHandler(collegesSvc, parser).Register(api)
	handlers.NewJobHandler(jobsSvc, usersSvc, logos, parser).Register(api)
	handlers.RegisterSwagger(r)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("starting placement portal on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
