package store

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"hiking-planner/internal/database"
	"hiking-planner/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const usersCollection = "users"

// emailFoldFilter 建立大小寫不敏感的完整比對條件
// 原字串須先 escape，避免被當成 regex 解讀
func emailFoldFilter(email string) bson.M {
	return bson.M{"email": primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(email) + "$",
		Options: "i",
	}}
}

func GetUserByID(ctx context.Context, db database.DB, id primitive.ObjectID) (*model.User, error) {
	u := &model.User{}
	err := db.Collection(usersCollection).FindOne(ctx, bson.M{"_id": id}).Decode(u)
	if err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

// GetUserByEmail 以完全一致的 email 查詢
func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	u := &model.User{}
	err := db.Collection(usersCollection).FindOne(ctx, bson.M{"email": email}).Decode(u)
	if err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// GetUserByEmailFold 以大小寫不敏感的 email 查詢
func GetUserByEmailFold(ctx context.Context, db database.DB, email string) (*model.User, error) {
	u := &model.User{}
	err := db.Collection(usersCollection).FindOne(ctx, emailFoldFilter(email)).Decode(u)
	if err != nil {
		return nil, fmt.Errorf("GetUserByEmailFold: %w", err)
	}
	return u, nil
}

// GetUserByEmailAndResetCode 同時比對 email 與重設密碼驗證碼
// 查無資料時不區分「無此使用者」與「驗證碼錯誤」
func GetUserByEmailAndResetCode(ctx context.Context, db database.DB, email, code string) (*model.User, error) {
	u := &model.User{}
	err := db.Collection(usersCollection).FindOne(ctx, bson.M{
		"email":              email,
		"forgotPasswordCode": code,
	}).Decode(u)
	if err != nil {
		return nil, fmt.Errorf("GetUserByEmailAndResetCode: %w", err)
	}
	return u, nil
}

// EmailTakenByOther 檢查 email 是否已被其他使用者使用（變更 email 用）
func EmailTakenByOther(ctx context.Context, db database.DB, email string, id primitive.ObjectID) (bool, error) {
	n, err := db.Collection(usersCollection).CountDocuments(ctx, bson.M{
		"email": email,
		"_id":   bson.M{"$ne": id},
	})
	if err != nil {
		return false, fmt.Errorf("EmailTakenByOther: %w", err)
	}
	return n > 0, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	res, err := db.Collection(usersCollection).InsertOne(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = id
	}
	return u, nil
}

// SaveUser 以 $set 寫回可變欄位，對應 mongoose 的 document.save()
func SaveUser(ctx context.Context, db database.DB, u *model.User) error {
	u.UpdatedAt = time.Now().UTC()
	_, err := db.Collection(usersCollection).UpdateOne(ctx,
		bson.M{"_id": u.ID},
		bson.M{"$set": bson.M{
			"firstName":                     u.FirstName,
			"lastName":                      u.LastName,
			"email":                         u.Email,
			"password":                      u.PasswordHash,
			"dob":                           u.DOB,
			"phone":                         u.Phone,
			"profilePic":                    u.ProfilePic,
			"isAdmin":                       u.IsAdmin,
			"isEmailVerified":               u.IsEmailVerified,
			"forgotPasswordCode":            u.ForgotPasswordCode,
			"lastUpdatedForgotPasswordCode": u.LastUpdatedForgotPasswordCode,
			"lastSentVerification":          u.LastSentVerification,
			"updatedAt":                     u.UpdatedAt,
		}},
	)
	if err != nil {
		return fmt.Errorf("SaveUser: %w", err)
	}
	return nil
}

func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	cur, err := db.Collection(usersCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	var users []model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

// ListUsersByIDs 依 ID 清單取回使用者，用於展開社群成員
func ListUsersByIDs(ctx context.Context, db database.DB, ids []primitive.ObjectID) ([]model.User, error) {
	if len(ids) == 0 {
		return []model.User{}, nil
	}
	cur, err := db.Collection(usersCollection).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("ListUsersByIDs: %w", err)
	}
	var users []model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("ListUsersByIDs: %w", err)
	}
	return users, nil
}

func DeleteUser(ctx context.Context, db database.DB, id primitive.ObjectID) error {
	_, err := db.Collection(usersCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("DeleteUser: %w", err)
	}
	return nil
}
