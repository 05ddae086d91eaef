package account

import (
	"strings"
	"time"

	"hiking-planner/internal/api"
	"hiking-planner/internal/database"
	"hiking-planner/internal/email"
	"hiking-planner/internal/handler/auth"
	"hiking-planner/internal/middleware"
	"hiking-planner/internal/service"
	"hiking-planner/internal/store"
	"hiking-planner/internal/worker"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 驗證信的重送間隔與驗證令牌效期
const (
	verificationThrottle = 5 * time.Minute
	emailTokenTTL        = 24 * time.Hour
)

var (
	hashPassword      = service.HashPassword
	authenticateUser  = service.AuthenticateUser
	issueAccessToken  = service.IssueAccessToken
	verifyAccessToken = service.VerifyAccessToken
	getUserByID       = store.GetUserByID
	emailTakenByOther = store.EmailTakenByOther
	saveUser          = store.SaveUser
	deleteUser        = store.DeleteUser
	timeNow           = time.Now
)

// @Summary     Get current account
// @Description 回傳令牌對應的使用者資料
// @Tags        account
// @Produce     json
// @Success     200 {object} api.Response{data=api.UserData}
// @Failure     401 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /account/me [get]
func GetMeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return api.Unauthorized(c, "Unauthorized")
		}
		return api.Success(c, api.UserData{User: user}, "")
	}
}

// @Summary     Update current account
// @Description 更新帳號欄位，變更 email 時需未被其他人使用並重置驗證狀態
// @Tags        account
// @Accept      json
// @Produce     json
// @Param       request body api.UpdateAccountRequest true "欲更新的欄位"
// @Success     200 {object} api.Response{data=api.UserData}
// @Failure     400 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /account [put]
func UpdateAccountHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return api.Unauthorized(c, "Unauthorized")
		}
		var req api.UpdateAccountRequest
		if err := c.Bind(&req); err != nil {
			return api.BadRequest(c, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return api.BadRequest(c, err.Error())
		}

		ctx := c.Request().Context()
		if req.Email != "" && !strings.EqualFold(req.Email, user.Email) {
			taken, err := emailTakenByOther(ctx, db, req.Email, user.ID)
			if err != nil {
				return api.ServerError(c, err.Error())
			}
			if taken {
				return api.BadRequest(c, "Email already exists.")
			}
			user.Email = req.Email
			user.IsEmailVerified = false
		}
		if req.FirstName != "" {
			user.FirstName = req.FirstName
		}
		if req.LastName != "" {
			user.LastName = req.LastName
		}
		if req.DOB != "" {
			user.DOB = req.DOB
		}
		if req.Phone != "" {
			user.Phone = req.Phone
		}

		if err := saveUser(ctx, db, user); err != nil {
			return api.ServerError(c, err.Error())
		}
		return api.Success(c, api.UserData{User: user}, "Your account has been updated successfully!")
	}
}

// @Summary     Delete current account
// @Description 刪除令牌對應的使用者帳號
// @Tags        account
// @Produce     json
// @Success     200 {object} api.Response
// @Failure     401 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /account [delete]
func DeleteAccountHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return api.Unauthorized(c, "Unauthorized")
		}
		if err := deleteUser(c.Request().Context(), db, user.ID); err != nil {
			return api.ServerError(c, err.Error())
		}
		return api.Success(c, nil, "Your account has been deleted successfully!")
	}
}

// @Summary     Change password
// @Description 驗證舊密碼後改為新密碼
// @Tags        account
// @Accept      json
// @Produce     json
// @Param       request body api.ChangePasswordRequest true "新舊密碼"
// @Success     200 {object} api.Response{data=api.UserData}
// @Failure     401 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /account/change-password [put]
func ChangePasswordHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return api.Unauthorized(c, "Unauthorized")
		}
		var req api.ChangePasswordRequest
		if err := c.Bind(&req); err != nil {
			return api.BadRequest(c, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return api.BadRequest(c, err.Error())
		}

		if err := authenticateUser(c.Request().Context(), *user, req.OldPassword); err != nil {
			return api.Unauthorized(c, "Old password is incorrect.")
		}
		hash, err := hashPassword(req.NewPassword)
		if err != nil {
			return api.ServerError(c, "failed to hash password")
		}
		user.PasswordHash = hash
		if err := saveUser(c.Request().Context(), db, user); err != nil {
			return api.ServerError(c, err.Error())
		}
		return api.Success(c, api.UserData{User: user}, "Your password has been changed successfully!")
	}
}

// @Summary     Send a verification email
// @Description 重送 email 驗證信，五分鐘內僅允許一次
// @Tags        account
// @Accept      json
// @Produce     json
// @Param       request body api.GenerateEmailTokenRequest false "驗證完成後導回的網址"
// @Success     200 {object} api.Response
// @Failure     400 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /account/verify-email/generate [post]
func GenerateEmailTokenHandler(db database.DB, sender email.Sender, pool worker.Pool, serverURL string) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return api.Unauthorized(c, "Unauthorized")
		}
		var req api.GenerateEmailTokenRequest
		if err := c.Bind(&req); err != nil {
			return api.BadRequest(c, "invalid form data")
		}

		if user.IsEmailVerified {
			return api.Success(c, nil, "Email already verified.")
		}
		now := timeNow().UTC()
		if user.LastSentVerification != nil && now.Sub(*user.LastSentVerification) < verificationThrottle {
			return api.BadRequest(c, "Email already sent.")
		}

		// 先記下寄送時間再寄信，避免重送風暴
		user.LastSentVerification = &now
		if err := saveUser(c.Request().Context(), db, user); err != nil {
			return api.ServerError(c, err.Error())
		}

		token, err := issueAccessToken(*user, emailTokenTTL)
		if err != nil {
			return api.ServerError(c, err.Error())
		}
		to := user.Email
		link := auth.VerificationLink(serverURL, token, req.FromURL)
		logger := c.Logger()
		pool.Submit(func() {
			if err := sender.Send(to, "Hiking Planner - Verify Your Email", auth.VerificationBody(link), true); err != nil {
				logger.Errorf("send verification email: %v", err)
			}
		})

		return api.Success(c, nil, "Email verification link sent successfully.")
	}
}

// @Summary     Verify email
// @Description 以信中令牌確認 email，令牌無效回 401
// @Tags        account
// @Produce     json
// @Param       token path string true "驗證令牌"
// @Success     200 {object} api.Response{data=api.UserData}
// @Failure     401 {object} api.Response
// @Failure     404 {object} api.Response
// @Router      /account/verify-email/{token} [post]
func VerifyEmailHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := verifyAccessToken(c.Param("token"))
		if err != nil {
			return api.Unauthorized(c, "Unauthorized")
		}
		id, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			return api.Unauthorized(c, "Unauthorized")
		}
		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			return api.NotFound(c, "User not found.")
		}
		if user.IsEmailVerified {
			return api.Success(c, nil, "Email already confirmed.")
		}
		user.IsEmailVerified = true
		if err := saveUser(c.Request().Context(), db, user); err != nil {
			return api.ServerError(c, err.Error())
		}
		return api.Success(c, api.UserData{User: user}, "Email confirmed successfully.")
	}
}
