package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response 所有端點共用的回應信封
// swagger:model Response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func Success(c echo.Context, data interface{}, message string) error {
	return c.JSON(http.StatusOK, Response{Success: true, Data: data, Message: message})
}

func Error(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Response{Success: false, Error: "Error", Message: message})
}

func BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Response{Success: false, Error: "Bad Request", Message: message})
}

func Unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, Response{Success: false, Error: "Unauthorized", Message: message})
}

func Forbidden(c echo.Context) error {
	return c.JSON(http.StatusForbidden, Response{Success: false, Error: "Forbidden, you don't have permission to access this resource."})
}

func NotFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, Response{Success: false, Error: "Not Found", Message: message})
}

func ServerError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "Internal Server Error", Message: message})
}
