package auth

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"hiking-planner/internal/api"
	"hiking-planner/internal/database"
	"hiking-planner/internal/email"
	"hiking-planner/internal/model"
	"hiking-planner/internal/service"
	"hiking-planner/internal/store"
	"hiking-planner/internal/worker"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// 重設密碼驗證碼的有效時間
const resetCodeTTL = 600000 * time.Millisecond

// 各種令牌的存活時間，rememberMe 延長至 30 天
const (
	tokenTTL          = 24 * time.Hour
	rememberTokenTTL  = 30 * 24 * time.Hour
	emailTokenTTL     = 24 * time.Hour
	defaultProfilePic = "placeholder.jpg"
)

var (
	hashPassword               = service.HashPassword
	authenticateUser           = service.AuthenticateUser
	issueAccessToken           = service.IssueAccessToken
	generateResetCode          = service.GenerateResetCode
	createUser                 = store.CreateUser
	getUserByID                = store.GetUserByID
	getUserByEmail             = store.GetUserByEmail
	getUserByEmailFold         = store.GetUserByEmailFold
	getUserByEmailAndResetCode = store.GetUserByEmailAndResetCode
	saveUser                   = store.SaveUser
	timeNow                    = time.Now
)

// VerificationLink 組出信件中的驗證網址，fromUrl 供前端驗證完導回
func VerificationLink(serverURL, token, fromURL string) string {
	link := serverURL + "/api/account/verify-email/" + token
	if fromURL != "" {
		link += "?fromUrl=" + url.QueryEscape(fromURL)
	}
	return link
}

// VerificationBody 產生驗證信的 HTML 內容
func VerificationBody(link string) string {
	return fmt.Sprintf(`<h2>Verify your email</h2><p>Click the link below to verify your email address.</p><a href="%s">Verify email</a>`, link)
}

// @Summary     Register a new user
// @Description 建立新帳號，email 重複時拒絕，成功後非同步寄出驗證信
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "註冊資料"
// @Success     200 {object} api.Response{data=api.AuthData}
// @Failure     400 {object} api.Response
// @Failure     500 {object} api.Response
// @Router      /auth/register [post]
func RegisterHandler(db database.DB, sender email.Sender, pool worker.Pool, serverURL string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return api.BadRequest(c, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return api.BadRequest(c, err.Error())
		}

		ctx := c.Request().Context()

		// 先比對完全一致，再比對大小寫不敏感
		if _, err := getUserByEmail(ctx, db, req.Email); err == nil {
			return api.BadRequest(c, "User with this email address already exists.")
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			return api.ServerError(c, err.Error())
		}
		if _, err := getUserByEmailFold(ctx, db, req.Email); err == nil {
			return api.BadRequest(c, "User with this email already exists.")
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			return api.ServerError(c, err.Error())
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return api.ServerError(c, "failed to hash password")
		}

		profilePic := req.ProfilePic
		if profilePic == "" {
			profilePic = defaultProfilePic
		}

		user, err := createUser(ctx, db, &model.User{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			PasswordHash: hash,
			DOB:          req.DOB,
			ProfilePic:   profilePic,
		})
		if err != nil {
			return api.ServerError(c, err.Error())
		}

		token, err := issueAccessToken(*user, tokenTTL)
		if err != nil {
			return api.ServerError(c, err.Error())
		}

		// 驗證信寄送失敗不影響註冊結果
		emailToken, err := issueAccessToken(*user, emailTokenTTL)
		if err == nil {
			to := user.Email
			link := VerificationLink(serverURL, emailToken, req.FromURL)
			logger := c.Logger()
			pool.Submit(func() {
				if err := sender.Send(to, "Welcome to Hiking Planner!", VerificationBody(link), true); err != nil {
					logger.Errorf("send verification email: %v", err)
				}
			})
		}

		return api.Success(c, api.AuthData{User: user, Token: token}, "User registered successfully!")
	}
}

// @Summary     Login
// @Description 帳密登入，email 比對不分大小寫，rememberMe 延長令牌效期
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "登入資料"
// @Success     200 {object} api.Response{data=api.AuthData}
// @Failure     401 {object} api.Response
// @Router      /auth/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return api.BadRequest(c, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return api.BadRequest(c, err.Error())
		}

		user, err := getUserByEmailFold(c.Request().Context(), db, req.Email)
		if err != nil {
			return api.Unauthorized(c, "Invalid Login Credentials.")
		}
		if err := authenticateUser(c.Request().Context(), *user, req.Password); err != nil {
			return api.Unauthorized(c, "Invalid Login Credentials.")
		}

		ttl := tokenTTL
		if req.RememberMe {
			ttl = rememberTokenTTL
		}
		token, err := issueAccessToken(*user, ttl)
		if err != nil {
			return api.ServerError(c, err.Error())
		}

		return api.Success(c, api.AuthData{User: user, Token: token}, "User logged in successfully!")
	}
}

// @Summary     Admin login
// @Description 管理員登入，僅接受完全一致的 email，且須具備管理員權限
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.AdminLoginRequest true "登入資料"
// @Success     200 {object} api.Response{data=api.AuthData}
// @Failure     401 {object} api.Response
// @Router      /auth/admin/login [post]
func AdminLoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.AdminLoginRequest
		if err := c.Bind(&req); err != nil {
			return api.BadRequest(c, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return api.BadRequest(c, err.Error())
		}

		user, err := getUserByEmail(c.Request().Context(), db, req.Email)
		if err != nil {
			return api.Unauthorized(c, "User not found.")
		}
		if !user.IsAdmin {
			return api.Unauthorized(c, "No admin access.")
		}
		if err := authenticateUser(c.Request().Context(), *user, req.Password); err != nil {
			return api.Unauthorized(c, "Invalid password.")
		}
		if !user.IsAdmin {
			return api.Unauthorized(c, "No admin access.")
		}

		token, err := issueAccessToken(*user, tokenTTL)
		if err != nil {
			return api.ServerError(c, err.Error())
		}

		return api.Success(c, api.AuthData{User: user, Token: token}, "User logged in successfully!")
	}
}

// @Summary     Request a password reset code
// @Description 產生六位數驗證碼並寄到使用者信箱，查無帳號回 401
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.ForgotPasswordRequest true "帳號 email"
// @Success     200 {object} api.Response{data=api.EmailData}
// @Failure     401 {object} api.Response
// @Router      /auth/forgot-password [post]
func ForgotPasswordHandler(db database.DB, sender email.Sender) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ForgotPasswordRequest
		if err := c.Bind(&req); err != nil {
			return api.BadRequest(c, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return api.BadRequest(c, err.Error())
		}

		ctx := c.Request().Context()
		user, err := getUserByEmailFold(ctx, db, req.Email)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return api.Unauthorized(c, "User not found.")
			}
			return api.ServerError(c, err.Error())
		}

		code, err := generateResetCode()
		if err != nil {
			return api.ServerError(c, err.Error())
		}
		now := timeNow().UTC()
		user.ForgotPasswordCode = &code
		user.LastUpdatedForgotPasswordCode = &now
		if err := saveUser(ctx, db, user); err != nil {
			return api.ServerError(c, err.Error())
		}

		if err := sender.Send(user.Email, "Reset Password", "Your reset password code is "+code, false); err != nil {
			return api.Error(c, "Failed to send email, please try again later.")
		}

		return api.Success(c, api.EmailData{Email: user.Email}, "Email sent successfully!")
	}
}

// @Summary     Verify a password reset code
// @Description 檢查驗證碼是否正確且未逾期（十分鐘）
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.VerifyResetCodeRequest true "email 與驗證碼"
// @Success     200 {object} api.Response{data=api.EmailData}
// @Failure     401 {object} api.Response
// @Router      /auth/verify-reset-password-code [post]
func VerifyResetCodeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.VerifyResetCodeRequest
		if err := c.Bind(&req); err != nil {
			return api.BadRequest(c, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return api.BadRequest(c, err.Error())
		}

		user, err := getUserByEmailAndResetCode(c.Request().Context(), db, req.Email, req.Code)
		if err != nil {
			return api.Unauthorized(c, "Invalid code.")
		}
		if user.LastUpdatedForgotPasswordCode == nil ||
			timeNow().Sub(*user.LastUpdatedForgotPasswordCode) > resetCodeTTL {
			return api.Unauthorized(c, "Code expired.")
		}

		return api.Success(c, api.EmailData{Email: user.Email}, "Code verified successfully!")
	}
}

// @Summary     Reset password with a code
// @Description 驗證碼正確且未逾期時更新密碼，並清除驗證碼
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.ResetPasswordRequest true "email、驗證碼與新密碼"
// @Success     200 {object} api.Response{data=api.UserData}
// @Failure     401 {object} api.Response
// @Router      /auth/reset-password [post]
func ResetPasswordHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ResetPasswordRequest
		if err := c.Bind(&req); err != nil {
			return api.BadRequest(c, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return api.BadRequest(c, err.Error())
		}

		ctx := c.Request().Context()
		user, err := getUserByEmail(ctx, db, req.Email)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return api.Unauthorized(c, "User not found.")
			}
			return api.ServerError(c, err.Error())
		}
		if user.ForgotPasswordCode == nil || *user.ForgotPasswordCode != req.Code {
			return api.Unauthorized(c, "Invalid code.")
		}
		if user.LastUpdatedForgotPasswordCode == nil ||
			timeNow().Sub(*user.LastUpdatedForgotPasswordCode) > resetCodeTTL {
			return api.Unauthorized(c, "Code expired.")
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return api.ServerError(c, "failed to hash password")
		}
		user.PasswordHash = hash
		user.ForgotPasswordCode = nil
		user.LastUpdatedForgotPasswordCode = nil
		if err := saveUser(ctx, db, user); err != nil {
			return api.ServerError(c, err.Error())
		}

		return api.Success(c, api.UserData{User: user}, "Password reset successfully!")
	}
}

// @Summary     Look up a user by ID
// @Description 依 ObjectID 查詢公開的使用者資料
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.GetUserRequest true "使用者 ID"
// @Success     200 {object} api.Response{data=api.UserData}
// @Failure     400 {object} api.Response
// @Failure     404 {object} api.Response
// @Router      /auth/get-user [post]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.GetUserRequest
		if err := c.Bind(&req); err != nil {
			return api.BadRequest(c, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return api.BadRequest(c, err.Error())
		}

		id, err := primitive.ObjectIDFromHex(req.ID)
		if err != nil {
			return api.BadRequest(c, "Invalid user ID.")
		}
		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			return api.NotFound(c, "User not found.")
		}

		return api.Success(c, api.UserData{User: user}, "User found successfully!")
	}
}
