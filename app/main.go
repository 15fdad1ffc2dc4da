package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	mysqlRepo "github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql"
	redisRepo "github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/redis"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/middleware"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/comment"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/reply"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/thread"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/workers"
)

const (
	defaultTimeout      = 30
	defaultAddress      = ":9090"
	defaultCacheDB      = 0
	defaultBloomBitSize = 10000000
	dbMaxRetry          = 10
	dbRetryInterval     = 2 * time.Second
)

type config struct {
	DBHost    string `validate:"required"`
	DBPort    string `validate:"required"`
	DBUser    string `validate:"required"`
	DBPass    string `validate:"required"`
	DBName    string `validate:"required"`
	CacheHost string `validate:"required"`
	CachePort string `validate:"required"`
	CachePass string
	JWTSecret string `validate:"required"`
}

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func loadConfig() config {
	cfg := config{
		DBHost:    os.Getenv("DATABASE_HOST"),
		DBPort:    os.Getenv("DATABASE_PORT"),
		DBUser:    os.Getenv("DATABASE_USER"),
		DBPass:    os.Getenv("DATABASE_PASS"),
		DBName:    os.Getenv("DATABASE_NAME"),
		CacheHost: os.Getenv("CACHE_HOST"),
		CachePort: os.Getenv("CACHE_PORT"),
		CachePass: os.Getenv("CACHE_PASS"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}
	if err := validator.New().Struct(cfg); err != nil {
		log.Fatal("invalid configuration: ", err)
	}
	return cfg
}

func main() {
	cfg := loadConfig()

	//prepare database
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "Asia/Jakarta")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := 0; i < dbMaxRetry; i++ {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			var sqlDB *sql.DB
			sqlDB, err = db.DB()
			if err == nil {
				err = sqlDB.Ping()
				if err == nil {
					break
				}
				log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				_ = sqlDB.Close()
			} else {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			}
		}

		time.Sleep(dbRetryInterval)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries: ", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare cache
	cacheDB, err := strconv.Atoi(os.Getenv("CACHE_DB"))
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.CacheHost + ":" + cfg.CachePort,
		Password: cfg.CachePass,
		DB:       cacheDB,
	})
	defer func() {
		err = client.Close()
		if err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("failed to open connection to cache", err)
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	route.Use(middleware.Metrics())
	timeout, err := strconv.Atoi(os.Getenv("CONTEXT_TIMEOUT"))
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	// Prepare Repository
	threadRepo := mysqlRepo.NewThreadRepository(db, mysqlRepo.DefaultIDGenerator)
	commentRepo := mysqlRepo.NewCommentRepository(db, mysqlRepo.DefaultIDGenerator)
	replyRepo := mysqlRepo.NewReplyRepository(db, mysqlRepo.DefaultIDGenerator)
	likeRepo := mysqlRepo.NewLikeRepository(db, mysqlRepo.DefaultIDGenerator)

	threadCache := redisRepo.NewThreadCache(client)

	bloomBitSize, err := strconv.ParseUint(os.Getenv("BLOOM_FILTER_SIZE"), 10, 64)
	if err != nil {
		log.Println("failed to parse bloom bit size, using default size")
		bloomBitSize = defaultBloomBitSize
	}
	bloomRepo := redisRepo.NewRedisBloomRepo(client, bloomBitSize)

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cacheInvalidator := workers.NewInvalidateCacheWorker(threadCache)
	go cacheInvalidator.Start(ctx)

	// Build service Layer
	threadSvc := thread.NewService(threadRepo, commentRepo, replyRepo, likeRepo, threadCache, bloomRepo)
	commentSvc := comment.NewService(commentRepo, threadRepo, likeRepo, bloomRepo, cacheInvalidator)
	replySvc := reply.NewService(replyRepo, commentRepo, threadRepo, cacheInvalidator)

	threadHandler := rest.NewThreadHandler(threadSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	replyHandler := rest.NewReplyHandler(replySvc)
	likeHandler := rest.NewLikeHandler(commentSvc)

	// Prepare bloom filter
	if err := threadSvc.InitBloomFilter(ctx); err != nil {
		log.Fatal("failed to init bloom filter: ", err)
	}

	// Register routes
	route.GET("/metrics", gin.WrapH(promhttp.Handler()))
	route.GET("/threads/:threadId", threadHandler.GetThreadDetail)

	authorized := route.Group("/")
	authorized.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		authorized.POST("/threads", threadHandler.PostThread)
		authorized.POST("/threads/:threadId/comments", commentHandler.PostComment)
		authorized.DELETE("/threads/:threadId/comments/:commentId", commentHandler.DeleteComment)
		authorized.POST("/threads/:threadId/comments/:commentId/replies", replyHandler.PostReply)
		authorized.DELETE("/threads/:threadId/comments/:commentId/replies/:replyId", replyHandler.DeleteReply)
		authorized.PUT("/threads/:threadId/comments/:commentId/likes", likeHandler.PutLike)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Waiting for worker to cleanup...")
	time.Sleep(2 * time.Second)

	log.Println("Server exiting")
}
