// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"

	"hiking-planner/internal/model"
)

// AuthenticateUser 根據使用者結構和明文密碼驗證
func AuthenticateUser(ctx context.Context, user model.User, password string) error {
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return errors.New("invalid password")
	}
	return nil
}
