package handler

import (
	"errors"

	"hiking-planner/internal/api"
	"hiking-planner/internal/cache"
	"hiking-planner/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// @Summary     Welcome
// @Produce     json
// @Success     200 {object} api.Response
// @Router      / [get]
func WelcomeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return api.Success(c, nil, "Welcome to The Hiking API.")
	}
}

// @Summary     Health check
// @Description 確認資料庫與快取連線皆存活
// @Tags        ping
// @Produce     json
// @Success     200 {object} api.Response{data=api.MessageData}
// @Failure     500 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /ping [get]
func PingHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return api.ServerError(c, "database unavailable")
		}
		// redis.Nil 代表連線正常只是查無此鍵
		if err := rdb.Get(ctx, "ping").Err(); err != nil && !errors.Is(err, redis.Nil) {
			return api.ServerError(c, "cache unavailable")
		}
		return api.Success(c, api.MessageData{Message: "pong"}, "")
	}
}
