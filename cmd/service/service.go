// @title        Hiking Planner API
// @version      1.0
// @description  健行社群後端 API 文件
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-access-token
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"hiking-planner/internal/cache"
	"hiking-planner/internal/database"
	"hiking-planner/internal/email"
	"hiking-planner/internal/router"
	"hiking-planner/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "hiking-planner/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	newMongoDB      = database.NewMongoDB
	ensureIndexesFn = database.EnsureIndexes
	newRedisClient  = cache.NewRedisClient
	newSMTPSender   = func(host string, port int, username, password, from string) email.Sender {
		return email.NewSMTPSender(host, port, username, password, from)
	}
	newWorkerPool = worker.NewPool
	startServer   = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc      = os.Exit
)

func run() error {
	mongoURL := os.Getenv("MONGODB_URL")
	if mongoURL == "" {
		return fmt.Errorf("環境變數 MONGODB_URL 未設定")
	}
	mongoName := os.Getenv("MONGODB_DATABASE")
	if mongoName == "" {
		return fmt.Errorf("環境變數 MONGODB_DATABASE 未設定")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}
	redisDBStr := os.Getenv("REDIS_DB")
	if redisDBStr == "" {
		return fmt.Errorf("環境變數 REDIS_DB 未設定")
	}
	redisIndex, err := strconv.Atoi(redisDBStr)
	if err != nil {
		return fmt.Errorf("無效的 REDIS_DB: %v", err)
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")

	smtpHost := os.Getenv("SMTP_HOST")
	if smtpHost == "" {
		return fmt.Errorf("環境變數 SMTP_HOST 未設定")
	}
	smtpPortStr := os.Getenv("SMTP_PORT")
	if smtpPortStr == "" {
		return fmt.Errorf("環境變數 SMTP_PORT 未設定")
	}
	smtpPort, err := strconv.Atoi(smtpPortStr)
	if err != nil {
		return fmt.Errorf("無效的 SMTP_PORT: %v", err)
	}
	smtpUsername := os.Getenv("SMTP_USERNAME")
	smtpPassword := os.Getenv("SMTP_PASSWORD")
	smtpFrom := os.Getenv("SMTP_FROM")
	if smtpFrom == "" {
		return fmt.Errorf("環境變數 SMTP_FROM 未設定")
	}

	serverURL := os.Getenv("SERVER_URL")
	if serverURL == "" {
		return fmt.Errorf("環境變數 SERVER_URL 未設定")
	}

	workerCount := 1
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		c, err := strconv.Atoi(v)
		if err != nil || c <= 0 {
			return fmt.Errorf("無效的 WORKER_COUNT: %v", err)
		}
		workerCount = c
	}

	ctx := context.Background()
	db, err := newMongoDB(ctx, mongoURL, mongoName)
	if err != nil {
		return fmt.Errorf("MongoDB 連線失敗: %v", err)
	}
	defer db.Close(ctx)

	if err := ensureIndexesFn(ctx, db); err != nil {
		return fmt.Errorf("索引建立失敗: %v", err)
	}

	rdb, err := newRedisClient(redisAddr, redisPassword, redisIndex)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer rdb.Close()

	sender := newSMTPSender(smtpHost, smtpPort, smtpUsername, smtpPassword, smtpFrom)

	wp := newWorkerPool(workerCount)
	defer wp.Stop()

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	router.Setup(e, db, rdb, sender, wp, serverURL)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, ":8080")
}
