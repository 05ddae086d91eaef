package account

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hiking-planner/internal/database"
	"hiking-planner/internal/email"
	"hiking-planner/internal/middleware"
	"hiking-planner/internal/model"
	"hiking-planner/internal/service"
	"hiking-planner/internal/store"
	"hiking-planner/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

type inlinePool struct{}

func (inlinePool) Submit(t worker.Task) { t() }
func (inlinePool) Stop()                {}

func newUserCtx(e *echo.Echo, user *model.User, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(middleware.ContextUserKey, user)
	}
	return c, rec
}

func restore() {
	hashPassword = service.HashPassword
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
	verifyAccessToken = service.VerifyAccessToken
	getUserByID = store.GetUserByID
	emailTakenByOther = store.EmailTakenByOther
	saveUser = store.SaveUser
	deleteUser = store.DeleteUser
	timeNow = time.Now
}

func TestGetMeHandler(t *testing.T) {
	e := echo.New()

	t.Run("no user", func(t *testing.T) {
		ctx, rec := newUserCtx(e, nil, "")
		require.NoError(t, GetMeHandler()(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		ctx, rec := newUserCtx(e, &model.User{Email: "a@x.com"}, "")
		require.NoError(t, GetMeHandler()(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "a@x.com")
		require.Contains(t, rec.Body.String(), `"success":true`)
	})
}

func TestUpdateAccountHandler(t *testing.T) {
	e := echo.New()
	e.Validator = &stubValidator{}

	t.Run("email taken", func(t *testing.T) {
		t.Cleanup(restore)
		emailTakenByOther = func(context.Context, database.DB, string, primitive.ObjectID) (bool, error) {
			return true, nil
		}
		ctx, rec := newUserCtx(e, &model.User{Email: "old@x.com"}, `{"email":"new@x.com"}`)
		require.NoError(t, UpdateAccountHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Email already exists.")
	})

	t.Run("email change resets verification", func(t *testing.T) {
		t.Cleanup(restore)
		emailTakenByOther = func(context.Context, database.DB, string, primitive.ObjectID) (bool, error) {
			return false, nil
		}
		saveUser = func(_ context.Context, _ database.DB, u *model.User) error {
			require.Equal(t, "new@x.com", u.Email)
			require.False(t, u.IsEmailVerified)
			require.Equal(t, "Alice", u.FirstName)
			return nil
		}
		user := &model.User{Email: "old@x.com", IsEmailVerified: true, FirstName: "Alice"}
		ctx, rec := newUserCtx(e, user, `{"email":"new@x.com"}`)
		require.NoError(t, UpdateAccountHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Your account has been updated successfully!")
	})

	t.Run("same email case change keeps verification", func(t *testing.T) {
		t.Cleanup(restore)
		saveUser = func(_ context.Context, _ database.DB, u *model.User) error {
			require.True(t, u.IsEmailVerified)
			require.Equal(t, "Bob", u.FirstName)
			return nil
		}
		user := &model.User{Email: "a@x.com", IsEmailVerified: true}
		ctx, rec := newUserCtx(e, user, `{"email":"A@X.com","firstName":"Bob"}`)
		require.NoError(t, UpdateAccountHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestDeleteAccountHandler(t *testing.T) {
	e := echo.New()
	id := primitive.NewObjectID()

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		deleteUser = func(_ context.Context, _ database.DB, got primitive.ObjectID) error {
			require.Equal(t, id, got)
			return nil
		}
		ctx, rec := newUserCtx(e, &model.User{ID: id}, "")
		require.NoError(t, DeleteAccountHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Your account has been deleted successfully!")
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		deleteUser = func(context.Context, database.DB, primitive.ObjectID) error {
			return errors.New("down")
		}
		ctx, rec := newUserCtx(e, &model.User{ID: id}, "")
		require.NoError(t, DeleteAccountHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestChangePasswordHandler(t *testing.T) {
	e := echo.New()
	e.Validator = &stubValidator{}

	t.Run("wrong old password", func(t *testing.T) {
		t.Cleanup(restore)
		authenticateUser = func(context.Context, model.User, string) error {
			return errors.New("invalid password")
		}
		ctx, rec := newUserCtx(e, &model.User{}, `{"oldPassword":"bad","newPassword":"new"}`)
		require.NoError(t, ChangePasswordHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "Old password is incorrect.")
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		authenticateUser = func(context.Context, model.User, string) error { return nil }
		hashPassword = func(p string) (string, error) {
			require.Equal(t, "new", p)
			return "newhash", nil
		}
		saveUser = func(_ context.Context, _ database.DB, u *model.User) error {
			require.Equal(t, "newhash", u.PasswordHash)
			return nil
		}
		ctx, rec := newUserCtx(e, &model.User{}, `{"oldPassword":"old","newPassword":"new"}`)
		require.NoError(t, ChangePasswordHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Your password has been changed successfully!")
	})
}

func TestGenerateEmailTokenHandler(t *testing.T) {
	e := echo.New()
	e.Validator = &stubValidator{}

	t.Run("already verified is a no-op success", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newUserCtx(e, &model.User{IsEmailVerified: true}, `{}`)
		require.NoError(t, GenerateEmailTokenHandler(nil, nil, nil, "")(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"success":true`)
		require.Contains(t, rec.Body.String(), "Email already verified.")
	})

	t.Run("throttled", func(t *testing.T) {
		t.Cleanup(restore)
		sent := time.Now().UTC().Add(-time.Minute)
		ctx, rec := newUserCtx(e, &model.User{LastSentVerification: &sent}, `{}`)
		require.NoError(t, GenerateEmailTokenHandler(nil, nil, nil, "")(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Email already sent.")
	})

	t.Run("timestamp saved before dispatch", func(t *testing.T) {
		t.Cleanup(restore)
		sent := time.Now().UTC().Add(-10 * time.Minute)
		user := &model.User{Email: "a@x.com", LastSentVerification: &sent}
		var order []string
		saveUser = func(_ context.Context, _ database.DB, u *model.User) error {
			order = append(order, "save")
			require.True(t, u.LastSentVerification.After(sent))
			return nil
		}
		issueAccessToken = func(model.User, time.Duration) (string, error) { return "tok", nil }
		sender := &email.FakeSender{SendFn: func(to, subject, body string, html bool) error {
			order = append(order, "send")
			require.Equal(t, "a@x.com", to)
			require.Equal(t, "Hiking Planner - Verify Your Email", subject)
			require.Contains(t, body, "/api/account/verify-email/tok")
			return nil
		}}
		ctx, rec := newUserCtx(e, user, `{"fromUrl":"https://app"}`)
		require.NoError(t, GenerateEmailTokenHandler(nil, sender, inlinePool{}, "https://api")(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, []string{"save", "send"}, order)
		require.Contains(t, rec.Body.String(), "Email verification link sent successfully.")
	})
}

func TestVerifyEmailHandler(t *testing.T) {
	e := echo.New()

	newTokenCtx := func(token string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, "/account/verify-email/"+token, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/account/verify-email/:token")
		c.SetParamNames("token")
		c.SetParamValues(token)
		return c, rec
	}

	t.Run("invalid token", func(t *testing.T) {
		t.Cleanup(restore)
		verifyAccessToken = func(string) (*service.CustomClaims, error) {
			return nil, errors.New("bad token")
		}
		ctx, rec := newTokenCtx("bad")
		require.NoError(t, VerifyEmailHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("user not found", func(t *testing.T) {
		t.Cleanup(restore)
		verifyAccessToken = func(string) (*service.CustomClaims, error) {
			return &service.CustomClaims{UserID: primitive.NewObjectID().Hex()}, nil
		}
		getUserByID = func(context.Context, database.DB, primitive.ObjectID) (*model.User, error) {
			return nil, mongo.ErrNoDocuments
		}
		ctx, rec := newTokenCtx("tok")
		require.NoError(t, VerifyEmailHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "User not found.")
	})

	t.Run("already confirmed", func(t *testing.T) {
		t.Cleanup(restore)
		verifyAccessToken = func(string) (*service.CustomClaims, error) {
			return &service.CustomClaims{UserID: primitive.NewObjectID().Hex()}, nil
		}
		getUserByID = func(context.Context, database.DB, primitive.ObjectID) (*model.User, error) {
			return &model.User{IsEmailVerified: true}, nil
		}
		ctx, rec := newTokenCtx("tok")
		require.NoError(t, VerifyEmailHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Email already confirmed.")
	})

	t.Run("confirms email", func(t *testing.T) {
		t.Cleanup(restore)
		id := primitive.NewObjectID()
		verifyAccessToken = func(string) (*service.CustomClaims, error) {
			return &service.CustomClaims{UserID: id.Hex()}, nil
		}
		getUserByID = func(context.Context, database.DB, primitive.ObjectID) (*model.User, error) {
			return &model.User{ID: id}, nil
		}
		saveUser = func(_ context.Context, _ database.DB, u *model.User) error {
			require.True(t, u.IsEmailVerified)
			return nil
		}
		ctx, rec := newTokenCtx("tok")
		require.NoError(t, VerifyEmailHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Email confirmed successfully.")
	})
}
