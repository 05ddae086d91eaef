package users

import (
	"errors"

	"hiking-planner/internal/api"
	"hiking-planner/internal/database"
	"hiking-planner/internal/model"
	"hiking-planner/internal/service"
	"hiking-planner/internal/store"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	hashPassword       = service.HashPassword
	createUser         = store.CreateUser
	getUserByID        = store.GetUserByID
	getUserByEmailFold = store.GetUserByEmailFold
	listUsers          = store.ListUsers
	saveUser           = store.SaveUser
	deleteUser         = store.DeleteUser
	emailTakenByOther  = store.EmailTakenByOther
)

func paramID(c echo.Context) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Param("id"))
}

// @Summary     List all users
// @Tags        users
// @Produce     json
// @Success     200 {object} api.Response{data=api.UsersData}
// @Failure     403 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return api.ServerError(c, err.Error())
		}
		return api.Success(c, api.UsersData{Users: users}, "Users retrieved successfully!")
	}
}

// @Summary     Get a user by ID
// @Tags        users
// @Produce     json
// @Param       id path string true "使用者 ID"
// @Success     200 {object} api.Response{data=api.UserData}
// @Failure     404 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /users/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := paramID(c)
		if err != nil {
			return api.BadRequest(c, "Invalid user ID.")
		}
		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			return api.NotFound(c, "User not found.")
		}
		return api.Success(c, api.UserData{User: user}, "User retrieved successfully!")
	}
}

// @Summary     Create a user
// @Description 管理員直接建立帳號，email 重複時拒絕
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body api.CreateUserRequest true "使用者資料"
// @Success     200 {object} api.Response{data=api.UserData}
// @Failure     400 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /users [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return api.BadRequest(c, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return api.BadRequest(c, err.Error())
		}

		ctx := c.Request().Context()
		if _, err := getUserByEmailFold(ctx, db, req.Email); err == nil {
			return api.BadRequest(c, "User with this email already exists.")
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			return api.ServerError(c, err.Error())
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return api.ServerError(c, "failed to hash password")
		}
		user, err := createUser(ctx, db, &model.User{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			Phone:        req.Phone,
			PasswordHash: hash,
			IsAdmin:      req.IsAdmin,
		})
		if err != nil {
			return api.ServerError(c, err.Error())
		}
		return api.Success(c, api.UserData{User: user}, "User created successfully!")
	}
}

// @Summary     Update a user
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id path string true "使用者 ID"
// @Param       request body api.UpdateUserRequest true "使用者資料"
// @Success     200 {object} api.Response{data=api.UserData}
// @Failure     400 {object} api.Response
// @Failure     404 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /users/{id} [put]
func UpdateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := paramID(c)
		if err != nil {
			return api.BadRequest(c, "Invalid user ID.")
		}
		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return api.BadRequest(c, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return api.BadRequest(c, err.Error())
		}

		ctx := c.Request().Context()
		user, err := getUserByID(ctx, db, id)
		if err != nil {
			return api.NotFound(c, "User not found.")
		}
		if req.Email != user.Email {
			taken, err := emailTakenByOther(ctx, db, req.Email, user.ID)
			if err != nil {
				return api.ServerError(c, err.Error())
			}
			if taken {
				return api.BadRequest(c, "Email already exists.")
			}
		}
		user.FirstName = req.FirstName
		user.LastName = req.LastName
		user.Email = req.Email
		user.Phone = req.Phone
		if err := saveUser(ctx, db, user); err != nil {
			return api.ServerError(c, err.Error())
		}
		return api.Success(c, api.UserData{User: user}, "User updated successfully!")
	}
}

// @Summary     Delete a user
// @Tags        users
// @Produce     json
// @Param       id path string true "使用者 ID"
// @Success     200 {object} api.Response
// @Failure     404 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /users/{id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := paramID(c)
		if err != nil {
			return api.BadRequest(c, "Invalid user ID.")
		}
		ctx := c.Request().Context()
		if _, err := getUserByID(ctx, db, id); err != nil {
			return api.NotFound(c, "User not found.")
		}
		if err := deleteUser(ctx, db, id); err != nil {
			return api.ServerError(c, err.Error())
		}
		return api.Success(c, nil, "User deleted successfully!")
	}
}
