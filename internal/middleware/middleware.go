package middleware

import (
	"hiking-planner/internal/api"
	"hiking-planner/internal/database"
	"hiking-planner/internal/model"
	"hiking-planner/internal/service"
	"hiking-planner/internal/store"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HeaderAccessToken 為帶原始簽章令牌的請求標頭
const HeaderAccessToken = "x-access-token"

const ContextUserKey = "user"

var (
	verifyAccessToken = service.VerifyAccessToken
	getUserByID       = store.GetUserByID
)

// RequireAuth 驗證 x-access-token，解析出使用者並放入 context
// 缺少令牌、驗證失敗或使用者不存在一律回 401
func RequireAuth(db database.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(HeaderAccessToken)
			if token == "" {
				return api.Unauthorized(c, "Unauthorized")
			}
			claims, err := verifyAccessToken(token)
			if err != nil {
				return api.Unauthorized(c, "Unauthorized")
			}
			id, err := primitive.ObjectIDFromHex(claims.UserID)
			if err != nil {
				return api.Unauthorized(c, "Unauthorized")
			}
			user, err := getUserByID(c.Request().Context(), db, id)
			if err != nil {
				return api.Unauthorized(c, "Unauthorized")
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// RequireAdmin 需接在 RequireAuth 之後，非管理員回 403
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get(ContextUserKey).(*model.User)
		if !ok || !user.IsAdmin {
			return api.Forbidden(c)
		}
		return next(c)
	}
}

// CurrentUser 取出 RequireAuth 放入 context 的使用者
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(ContextUserKey).(*model.User)
	return user, ok
}
