package router

import (
	"github.com/labstack/echo/v4"

	"hiking-planner/internal/cache"
	"hiking-planner/internal/database"
	"hiking-planner/internal/email"
	"hiking-planner/internal/handler"
	"hiking-planner/internal/handler/account"
	"hiking-planner/internal/handler/auth"
	"hiking-planner/internal/handler/comments"
	"hiking-planner/internal/handler/community"
	"hiking-planner/internal/handler/country"
	"hiking-planner/internal/handler/users"
	"hiking-planner/internal/middleware"
	"hiking-planner/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, sender email.Sender, pool worker.Pool, serverURL string) {
	requireAuth := middleware.RequireAuth(db)

	e.GET("/", handler.WelcomeHandler())

	api := e.Group("/api")

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db, rdb), requireAuth)

	// 註冊、登入與密碼重設，皆為公開端點
	apiAuth := api.Group("/auth")
	apiAuth.POST("/register", auth.RegisterHandler(db, sender, pool, serverURL))
	apiAuth.POST("/login", auth.LoginHandler(db))
	apiAuth.POST("/admin/login", auth.AdminLoginHandler(db))
	apiAuth.POST("/forgot-password", auth.ForgotPasswordHandler(db, sender))
	apiAuth.POST("/verify-reset-password-code", auth.VerifyResetCodeHandler(db))
	apiAuth.POST("/reset-password", auth.ResetPasswordHandler(db))
	apiAuth.POST("/get-user", auth.GetUserHandler(db))

	// 當前使用者帳號管理
	apiAccount := api.Group("/account", requireAuth)
	apiAccount.GET("/me", account.GetMeHandler())
	apiAccount.PUT("", account.UpdateAccountHandler(db))
	apiAccount.DELETE("", account.DeleteAccountHandler(db))
	apiAccount.PUT("/change-password", account.ChangePasswordHandler(db))
	apiAccount.POST("/verify-email/generate", account.GenerateEmailTokenHandler(db, sender, pool, serverURL))

	// 驗證信的令牌端點不經過登入檢查
	api.POST("/account/verify-email/:token", account.VerifyEmailHandler(db))

	// 管理員專屬 Users CRUD
	apiUsers := api.Group("/users", requireAuth, middleware.RequireAdmin)
	apiUsers.GET("", users.ListUsersHandler(db))
	apiUsers.POST("", users.CreateUserHandler(db))
	apiUsers.GET("/:id", users.GetUserHandler(db))
	apiUsers.PUT("/:id", users.UpdateUserHandler(db))
	apiUsers.DELETE("/:id", users.DeleteUserHandler(db))

	// 國家參考資料，清單公開且走快取，寫入僅限管理員
	api.GET("/countries", country.ListCountriesHandler(db, rdb))
	apiCountries := api.Group("/countries", requireAuth, middleware.RequireAdmin)
	apiCountries.POST("", country.CreateCountryHandler(db, rdb))
	apiCountries.PUT("/:id", country.UpdateCountryHandler(db, rdb))
	apiCountries.DELETE("/:id", country.DeleteCountryHandler(db, rdb))

	// 社群與活動
	apiCommunity := api.Group("/community", requireAuth)
	apiCommunity.GET("", community.ListCommunitiesHandler(db))
	apiCommunity.POST("", community.CreateCommunityHandler(db))
	apiCommunity.GET("/:id", community.GetCommunityHandler(db))
	apiCommunity.PUT("/:id", community.UpdateCommunityHandler(db), middleware.RequireAdmin)
	apiCommunity.DELETE("/:id", community.DeleteCommunityHandler(db), middleware.RequireAdmin)
	apiCommunity.POST("/:id/join", community.JoinCommunityHandler(db))
	apiCommunity.POST("/:id/leave", community.LeaveCommunityHandler(db))
	apiCommunity.GET("/:id/members", community.GetCommunityMembersHandler(db))
	apiCommunity.POST("/:id/events", community.AddEventHandler(db))
	apiCommunity.POST("/event/:eventId/join", community.JoinEventHandler(db))
	apiCommunity.POST("/event/:eventId/leave", community.LeaveEventHandler(db))
	apiCommunity.POST("/event/:eventId/addComment", community.AddCommentHandler(db))

	// 留言 CRUD
	apiComments := api.Group("/comments", requireAuth)
	apiComments.POST("", comments.CreateCommentHandler(db))
	apiComments.GET("", comments.ListCommentsHandler(db))
	apiComments.DELETE("", comments.DeleteAllCommentsHandler(db))
	apiComments.GET("/:id", comments.GetCommentHandler(db))
	apiComments.PUT("/:id", comments.UpdateCommentHandler(db))
	apiComments.DELETE("/:id", comments.DeleteCommentHandler(db))
}
