// File: internal/model/user.go
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User 使用者文件，欄位名稱對應 users collection
// 密碼雜湊僅寫入，任何 API 回應都不得序列化 (json:"-")
type User struct {
	ID                            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName                     string             `bson:"firstName" json:"firstName"`
	LastName                      string             `bson:"lastName" json:"lastName"`
	Email                         string             `bson:"email" json:"email"`
	PasswordHash                  string             `bson:"password" json:"-"`
	DOB                           string             `bson:"dob,omitempty" json:"dob,omitempty"`
	Phone                         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	ProfilePic                    string             `bson:"profilePic,omitempty" json:"profilePic,omitempty"`
	IsAdmin                       bool               `bson:"isAdmin" json:"isAdmin"`
	IsEmailVerified               bool               `bson:"isEmailVerified" json:"isEmailVerified"`
	ForgotPasswordCode            *string            `bson:"forgotPasswordCode" json:"-"`
	LastUpdatedForgotPasswordCode *time.Time         `bson:"lastUpdatedForgotPasswordCode" json:"-"`
	LastSentVerification          *time.Time         `bson:"lastSentVerification,omitempty" json:"-"`
	CreatedAt                     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt                     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
