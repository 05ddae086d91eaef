package comments

import (
	"hiking-planner/internal/api"
	"hiking-planner/internal/database"
	"hiking-planner/internal/middleware"
	"hiking-planner/internal/model"
	"hiking-planner/internal/store"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	createComment     = store.CreateComment
	getCommentByID    = store.GetCommentByID
	listComments      = store.ListComments
	saveComment       = store.SaveComment
	deleteComment     = store.DeleteComment
	deleteAllComments = store.DeleteAllComments
	getEventByID      = store.GetEventByID
	saveEvent         = store.SaveEvent
)

// @Summary     Create a comment
// @Description 建立留言並掛到指定活動下
// @Tags        comments
// @Accept      json
// @Produce     json
// @Param       request body api.CreateCommentRequest true "留言內容"
// @Success     200 {object} api.Response{data=api.CommentData}
// @Failure     404 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /comments [post]
func CreateCommentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return api.Unauthorized(c, "Unauthorized")
		}
		var req api.CreateCommentRequest
		if err := c.Bind(&req); err != nil {
			return api.BadRequest(c, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return api.BadRequest(c, err.Error())
		}
		eventID, err := primitive.ObjectIDFromHex(req.EventID)
		if err != nil {
			return api.BadRequest(c, "Invalid event ID.")
		}

		ctx := c.Request().Context()
		ev, err := getEventByID(ctx, db, eventID)
		if err != nil {
			return api.NotFound(c, "Event not found")
		}
		cm, err := createComment(ctx, db, &model.Comment{PostedBy: user.ID, Text: req.Text})
		if err != nil {
			return api.ServerError(c, err.Error())
		}
		ev.Comments = append(ev.Comments, cm.ID)
		if err := saveEvent(ctx, db, ev); err != nil {
			return api.ServerError(c, err.Error())
		}
		return api.Success(c, api.CommentData{Comment: cm}, "Comment created successfully!")
	}
}

// @Summary     List all comments
// @Tags        comments
// @Produce     json
// @Success     200 {object} api.Response{data=api.CommentsData}
// @Security    ApiKeyAuth
// @Router      /comments [get]
func ListCommentsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		comments, err := listComments(c.Request().Context(), db)
		if err != nil {
			return api.ServerError(c, err.Error())
		}
		return api.Success(c, api.CommentsData{Comments: comments}, "Comments retrieved successfully!")
	}
}

// @Summary     Get a comment
// @Tags        comments
// @Produce     json
// @Param       id path string true "留言 ID"
// @Success     200 {object} api.Response{data=api.CommentData}
// @Failure     404 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /comments/{id} [get]
func GetCommentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			return api.BadRequest(c, "Invalid comment ID.")
		}
		cm, err := getCommentByID(c.Request().Context(), db, id)
		if err != nil {
			return api.NotFound(c, "Comment not found.")
		}
		return api.Success(c, api.CommentData{Comment: cm}, "Comment retrieved successfully!")
	}
}

// @Summary     Update a comment
// @Tags        comments
// @Accept      json
// @Produce     json
// @Param       id path string true "留言 ID"
// @Param       request body api.UpdateCommentRequest true "留言內容"
// @Success     200 {object} api.Response{data=api.CommentData}
// @Failure     404 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /comments/{id} [put]
func UpdateCommentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			return api.BadRequest(c, "Invalid comment ID.")
		}
		var req api.UpdateCommentRequest
		if err := c.Bind(&req); err != nil {
			return api.BadRequest(c, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return api.BadRequest(c, err.Error())
		}

		ctx := c.Request().Context()
		cm, err := getCommentByID(ctx, db, id)
		if err != nil {
			return api.NotFound(c, "Comment not found.")
		}
		cm.Text = req.Text
		if err := saveComment(ctx, db, cm); err != nil {
			return api.ServerError(c, err.Error())
		}
		return api.Success(c, api.CommentData{Comment: cm}, "Comment updated successfully!")
	}
}

// @Summary     Delete a comment
// @Tags        comments
// @Produce     json
// @Param       id path string true "留言 ID"
// @Success     200 {object} api.Response
// @Failure     404 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /comments/{id} [delete]
func DeleteCommentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			return api.BadRequest(c, "Invalid comment ID.")
		}
		ctx := c.Request().Context()
		if _, err := getCommentByID(ctx, db, id); err != nil {
			return api.NotFound(c, "Comment not found.")
		}
		if err := deleteComment(ctx, db, id); err != nil {
			return api.ServerError(c, err.Error())
		}
		return api.Success(c, nil, "Comment deleted successfully!")
	}
}

// @Summary     Delete all comments
// @Tags        comments
// @Produce     json
// @Success     200 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /comments [delete]
func DeleteAllCommentsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := deleteAllComments(c.Request().Context(), db); err != nil {
			return api.ServerError(c, err.Error())
		}
		return api.Success(c, nil, "All comments deleted successfully!")
	}
}
