package main

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"hiking-planner/internal/cache"
	"hiking-planner/internal/database"
	"hiking-planner/internal/email"
	"hiking-planner/internal/worker"
)

func restoreGlobals() {
	newMongoDB = database.NewMongoDB
	ensureIndexesFn = database.EnsureIndexes
	newRedisClient = cache.NewRedisClient
	newSMTPSender = func(host string, port int, username, password, from string) email.Sender {
		return email.NewSMTPSender(host, port, username, password, from)
	}
	newWorkerPool = worker.NewPool
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc = func(code int) {}
}

func setEnv(t *testing.T) {
	t.Setenv("MONGODB_URL", "mongodb://localhost:27017")
	t.Setenv("MONGODB_DATABASE", "hiking")
	t.Setenv("REDIS_ADDR", "127")
	t.Setenv("REDIS_DB", "1")
	t.Setenv("REDIS_PASSWORD", "pw")
	t.Setenv("SMTP_HOST", "smtp")
	t.Setenv("SMTP_PORT", "587")
	t.Setenv("SMTP_USERNAME", "u")
	t.Setenv("SMTP_PASSWORD", "p")
	t.Setenv("SMTP_FROM", "noreply@hiking.test")
	t.Setenv("SERVER_URL", "http://localhost:8080")
}

func TestCustomValidator(t *testing.T) {
	cv := &CustomValidator{validator: validator.New()}
	type s struct {
		Name string `validate:"required"`
	}
	require.NoError(t, cv.Validate(&s{Name: "ok"}))
	require.Error(t, cv.Validate(&s{}))
}

func TestRunSuccess(t *testing.T) {
	t.Cleanup(restoreGlobals)
	called := make(map[string]bool)
	newMongoDB = func(ctx context.Context, url, name string) (database.DB, error) {
		called["mongo"] = true
		require.Equal(t, "hiking", name)
		return &database.FakeDB{CloseFn: func(context.Context) error { called["dbClose"] = true; return nil }}, nil
	}
	ensureIndexesFn = func(context.Context, database.DB) error {
		called["indexes"] = true
		return nil
	}
	newRedisClient = func(addr, pwd string, db int) (cache.Cache, error) {
		called["redis"] = true
		require.Equal(t, "127", addr)
		require.Equal(t, "pw", pwd)
		require.Equal(t, 1, db)
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	newSMTPSender = func(host string, port int, username, password, from string) email.Sender {
		called["smtp"] = true
		require.Equal(t, "smtp", host)
		require.Equal(t, 587, port)
		return &email.FakeSender{}
	}
	startServer = func(e *echo.Echo, addr string) error {
		called["start"] = true
		require.Equal(t, ":8080", addr)
		return nil
	}

	setEnv(t)
	require.NoError(t, run())
	require.True(t, called["mongo"])
	require.True(t, called["indexes"])
	require.True(t, called["redis"])
	require.True(t, called["smtp"])
	require.True(t, called["start"])
	require.True(t, called["dbClose"])
	require.True(t, called["redisClose"])
}

func TestRunMissingEnv(t *testing.T) {
	t.Cleanup(restoreGlobals)
	setEnv(t)
	for _, key := range []string{
		"MONGODB_URL", "MONGODB_DATABASE", "REDIS_ADDR", "REDIS_DB",
		"SMTP_HOST", "SMTP_PORT", "SMTP_FROM", "SERVER_URL",
	} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, "")
			require.Error(t, run())
		})
	}
}

func TestRunBadValues(t *testing.T) {
	t.Cleanup(restoreGlobals)
	setEnv(t)

	t.Run("bad redis db", func(t *testing.T) {
		t.Setenv("REDIS_DB", "bad")
		require.Error(t, run())
	})

	t.Run("bad worker count", func(t *testing.T) {
		t.Setenv("WORKER_COUNT", "zero")
		require.Error(t, run())
	})

	t.Run("mongo connect failure", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		newMongoDB = func(context.Context, string, string) (database.DB, error) {
			return nil, errors.New("refused")
		}
		require.Error(t, run())
	})

	t.Run("redis connect failure", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		newMongoDB = func(context.Context, string, string) (database.DB, error) {
			return &database.FakeDB{CloseFn: func(context.Context) error { return nil }}, nil
		}
		ensureIndexesFn = func(context.Context, database.DB) error { return nil }
		newRedisClient = func(string, string, int) (cache.Cache, error) {
			return nil, errors.New("refused")
		}
		require.Error(t, run())
	})
}
