package community

import (
	"strings"
	"time"

	"hiking-planner/internal/api"
	"hiking-planner/internal/database"
	"hiking-planner/internal/middleware"
	"hiking-planner/internal/model"
	"hiking-planner/internal/store"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	createCommunity         = store.CreateCommunity
	getCommunityByID        = store.GetCommunityByID
	listCommunities         = store.ListCommunities
	listCommunitiesByMember = store.ListCommunitiesByMember
	saveCommunity           = store.SaveCommunity
	deleteCommunity         = store.DeleteCommunity
	createEvent             = store.CreateEvent
	getEventByID            = store.GetEventByID
	saveEvent               = store.SaveEvent
	createComment           = store.CreateComment
	getCommentByID          = store.GetCommentByID
	saveComment             = store.SaveComment
	listUsersByIDs          = store.ListUsersByIDs
	timeNow                 = time.Now
)

func contains(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func remove(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// splitWhatToBring 把逗號分隔的裝備清單拆成陣列並去除空白
func splitWhatToBring(s string) []string {
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			items = append(items, v)
		}
	}
	return items
}

// @Summary     Create a community
// @Tags        community
// @Accept      json
// @Produce     json
// @Param       request body api.CreateCommunityRequest true "社群資料"
// @Success     200 {object} api.Response{data=api.CommunityData}
// @Failure     400 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /community [post]
func CreateCommunityHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateCommunityRequest
		if err := c.Bind(&req); err != nil {
			return api.BadRequest(c, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return api.BadRequest(c, err.Error())
		}

		cm, err := createCommunity(c.Request().Context(), db, &model.Community{
			Name:             req.Name,
			Description:      req.Description,
			ShortDescription: req.ShortDescription,
			Image:            req.Image,
		})
		if err != nil {
			return api.ServerError(c, err.Error())
		}
		return api.Success(c, api.CommunityData{Community: cm}, "Community created successfully")
	}
}

// @Summary     List communities
// @Description onlyMyCommunities=true 時僅列出使用者已加入的社群
// @Tags        community
// @Produce     json
// @Param       onlyMyCommunities query boolean false "僅列出已加入的社群"
// @Success     200 {object} api.Response{data=api.CommunitiesData}
// @Security    ApiKeyAuth
// @Router      /community [get]
func ListCommunitiesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		var communities []model.Community
		var err error
		if c.QueryParam("onlyMyCommunities") == "true" {
			user, ok := middleware.CurrentUser(c)
			if !ok {
				return api.Unauthorized(c, "Unauthorized")
			}
			communities, err = listCommunitiesByMember(ctx, db, user.ID)
		} else {
			communities, err = listCommunities(ctx, db)
		}
		if err != nil {
			return api.ServerError(c, err.Error())
		}
		return api.Success(c, api.CommunitiesData{Communities: communities}, "Communities retrieved successfully")
	}
}

// @Summary     Get a community
// @Tags        community
// @Produce     json
// @Param       id path string true "社群 ID"
// @Success     200 {object} api.Response{data=api.CommunityData}
// @Failure     404 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /community/{id} [get]
func GetCommunityHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			return api.BadRequest(c, "Invalid community ID.")
		}
		cm, err := getCommunityByID(c.Request().Context(), db, id)
		if err != nil {
			return api.NotFound(c, "Community not found")
		}
		return api.Success(c, api.CommunityData{Community: cm}, "Community retrieved successfully")
	}
}

// @Summary     Update a community
// @Tags        community
// @Accept      json
// @Produce     json
// @Param       id path string true "社群 ID"
// @Param       request body api.UpdateCommunityRequest true "欲更新的欄位"
// @Success     200 {object} api.Response{data=api.CommunityData}
// @Failure     404 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /community/{id} [put]
func UpdateCommunityHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			return api.BadRequest(c, "Invalid community ID.")
		}
		var req api.UpdateCommunityRequest
		if err := c.Bind(&req); err != nil {
			return api.BadRequest(c, "invalid form data")
		}

		ctx := c.Request().Context()
		cm, err := getCommunityByID(ctx, db, id)
		if err != nil {
			return api.NotFound(c, "Community not found")
		}
		if req.Name != "" {
			cm.Name = req.Name
		}
		if req.Description != "" {
			cm.Description = req.Description
		}
		if req.ShortDescription != "" {
			cm.ShortDescription = req.ShortDescription
		}
		if req.Image != "" {
			cm.Image = req.Image
		}
		if err := saveCommunity(ctx, db, cm); err != nil {
			return api.ServerError(c, err.Error())
		}
		return api.Success(c, api.CommunityData{Community: cm}, "Community updated successfully")
	}
}

// @Summary     Delete a community
// @Tags        community
// @Produce     json
// @Param       id path string true "社群 ID"
// @Success     200 {object} api.Response{data=api.CommunityData}
// @Failure     404 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /community/{id} [delete]
func DeleteCommunityHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			return api.BadRequest(c, "Invalid community ID.")
		}
		ctx := c.Request().Context()
		cm, err := getCommunityByID(ctx, db, id)
		if err != nil {
			return api.NotFound(c, "Community not found")
		}
		if err := deleteCommunity(ctx, db, id); err != nil {
			return api.ServerError(c, err.Error())
		}
		return api.Success(c, api.CommunityData{Community: cm}, "Community deleted successfully")
	}
}

// @Summary     Join a community
// @Tags        community
// @Produce     json
// @Param       id path string true "社群 ID"
// @Success     200 {object} api.Response{data=api.CommunityData}
// @Failure     400 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /community/{id}/join [post]
func JoinCommunityHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return api.Unauthorized(c, "Unauthorized")
		}
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			return api.BadRequest(c, "Invalid community ID.")
		}
		ctx := c.Request().Context()
		cm, err := getCommunityByID(ctx, db, id)
		if err != nil {
			return api.NotFound(c, "Community not found")
		}
		if contains(cm.Members, user.ID) {
			return api.BadRequest(c, "User is already a member of this community")
		}
		cm.Members = append(cm.Members, user.ID)
		if err := saveCommunity(ctx, db, cm); err != nil {
			return api.ServerError(c, err.Error())
		}
		return api.Success(c, api.CommunityData{Community: cm}, "User joined community successfully")
	}
}

// @Summary     Leave a community
// @Tags        community
// @Produce     json
// @Param       id path string true "社群 ID"
// @Success     200 {object} api.Response{data=api.CommunityData}
// @Failure     400 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /community/{id}/leave [post]
func LeaveCommunityHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return api.Unauthorized(c, "Unauthorized")
		}
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			return api.BadRequest(c, "Invalid community ID.")
		}
		ctx := c.Request().Context()
		cm, err := getCommunityByID(ctx, db, id)
		if err != nil {
			return api.NotFound(c, "Community not found")
		}
		if !contains(cm.Members, user.ID) {
			return api.BadRequest(c, "User is not a member of this community")
		}
		cm.Members = remove(cm.Members, user.ID)
		if err := saveCommunity(ctx, db, cm); err != nil {
			return api.ServerError(c, err.Error())
		}
		return api.Success(c, api.CommunityData{Community: cm}, "User left community successfully")
	}
}

// @Summary     List community members
// @Tags        community
// @Produce     json
// @Param       id path string true "社群 ID"
// @Success     200 {object} api.Response{data=api.MembersData}
// @Failure     404 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /community/{id}/members [get]
func GetCommunityMembersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			return api.BadRequest(c, "Invalid community ID.")
		}
		ctx := c.Request().Context()
		cm, err := getCommunityByID(ctx, db, id)
		if err != nil {
			return api.NotFound(c, "Community not found")
		}
		members, err := listUsersByIDs(ctx, db, cm.Members)
		if err != nil {
			return api.ServerError(c, err.Error())
		}
		return api.Success(c, api.MembersData{Members: members}, "Community members retrieved successfully")
	}
}

// @Summary     Add an event to a community
// @Tags        community
// @Accept      json
// @Produce     json
// @Param       id path string true "社群 ID"
// @Param       request body api.AddEventRequest true "活動資料"
// @Success     200 {object} api.Response{data=api.EventData}
// @Failure     400 {object} api.Response
// @Failure     404 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /community/{id}/events [post]
func AddEventHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			return api.BadRequest(c, "Invalid community ID.")
		}
		var req api.AddEventRequest
		if err := c.Bind(&req); err != nil {
			return api.BadRequest(c, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return api.BadRequest(c, err.Error())
		}
		date, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			return api.BadRequest(c, "Invalid date format.")
		}

		ctx := c.Request().Context()
		cm, err := getCommunityByID(ctx, db, id)
		if err != nil {
			return api.NotFound(c, "Community not found")
		}

		ev, err := createEvent(ctx, db, &model.Event{
			Name:             req.Name,
			Description:      req.Description,
			ShortDescription: req.ShortDescription,
			Date:             date,
			WhatToBring:      splitWhatToBring(req.WhatToBring),
			Longitude:        req.Longitude,
			Latitude:         req.Latitude,
			DifficultyLevel:  req.DifficultyLevel,
			Distance:         req.Distance,
			Duration:         req.Duration,
			Elevation:        req.Elevation,
			Image:            req.Image,
			Community:        cm.ID,
		})
		if err != nil {
			return api.ServerError(c, err.Error())
		}
		cm.Events = append(cm.Events, ev.ID)
		if err := saveCommunity(ctx, db, cm); err != nil {
			return api.ServerError(c, err.Error())
		}
		return api.Success(c, api.EventData{Event: ev}, "Event added to community successfully")
	}
}

// @Summary     Join an event
// @Tags        community
// @Produce     json
// @Param       eventId path string true "活動 ID"
// @Success     200 {object} api.Response{data=api.EventData}
// @Failure     400 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /community/event/{eventId}/join [post]
func JoinEventHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return api.Unauthorized(c, "Unauthorized")
		}
		id, err := primitive.ObjectIDFromHex(c.Param("eventId"))
		if err != nil {
			return api.BadRequest(c, "Invalid event ID.")
		}
		ctx := c.Request().Context()
		ev, err := getEventByID(ctx, db, id)
		if err != nil {
			return api.NotFound(c, "Event not found")
		}
		if contains(ev.Going, user.ID) {
			return api.BadRequest(c, "User is already an attendee of this event")
		}
		ev.Going = append(ev.Going, user.ID)
		if err := saveEvent(ctx, db, ev); err != nil {
			return api.ServerError(c, err.Error())
		}
		return api.Success(c, api.EventData{Event: ev}, "User joined event successfully")
	}
}

// @Summary     Leave an event
// @Description 活動已開始或結束則不可退出
// @Tags        community
// @Produce     json
// @Param       eventId path string true "活動 ID"
// @Success     200 {object} api.Response{data=api.EventData}
// @Failure     400 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /community/event/{eventId}/leave [post]
func LeaveEventHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return api.Unauthorized(c, "Unauthorized")
		}
		id, err := primitive.ObjectIDFromHex(c.Param("eventId"))
		if err != nil {
			return api.BadRequest(c, "Invalid event ID.")
		}
		ctx := c.Request().Context()
		ev, err := getEventByID(ctx, db, id)
		if err != nil {
			return api.NotFound(c, "Event not found")
		}
		if ev.Date.Before(timeNow()) {
			return api.BadRequest(c, "Event has already passed")
		}
		if !contains(ev.Going, user.ID) {
			return api.BadRequest(c, "User is not an attendee of this event")
		}
		ev.Going = remove(ev.Going, user.ID)
		if err := saveEvent(ctx, db, ev); err != nil {
			return api.ServerError(c, err.Error())
		}
		return api.Success(c, api.EventData{Event: ev}, "User left event successfully")
	}
}

// @Summary     Comment on an event
// @Description replyingTo 有值時改掛在該留言的回覆串下
// @Tags        community
// @Accept      json
// @Produce     json
// @Param       eventId path string true "活動 ID"
// @Param       request body api.AddCommentRequest true "留言內容"
// @Success     200 {object} api.Response{data=api.EventData}
// @Failure     400 {object} api.Response
// @Failure     404 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /community/event/{eventId}/addComment [post]
func AddCommentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return api.Unauthorized(c, "Unauthorized")
		}
		id, err := primitive.ObjectIDFromHex(c.Param("eventId"))
		if err != nil {
			return api.BadRequest(c, "Invalid event ID.")
		}
		var req api.AddCommentRequest
		if err := c.Bind(&req); err != nil {
			return api.BadRequest(c, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return api.BadRequest(c, err.Error())
		}

		ctx := c.Request().Context()
		ev, err := getEventByID(ctx, db, id)
		if err != nil {
			return api.NotFound(c, "Event not found")
		}

		var parent *model.Comment
		if req.ReplyingTo != "" {
			parentID, err := primitive.ObjectIDFromHex(req.ReplyingTo)
			if err != nil {
				return api.BadRequest(c, "Invalid comment ID.")
			}
			parent, err = getCommentByID(ctx, db, parentID)
			if err != nil {
				return api.NotFound(c, "Comment not found")
			}
		}

		cm, err := createComment(ctx, db, &model.Comment{
			PostedBy: user.ID,
			Text:     req.Text,
		})
		if err != nil {
			return api.ServerError(c, err.Error())
		}

		if parent != nil {
			parent.Replies = append(parent.Replies, cm.ID)
			if err := saveComment(ctx, db, parent); err != nil {
				return api.ServerError(c, err.Error())
			}
		} else {
			ev.Comments = append(ev.Comments, cm.ID)
			if err := saveEvent(ctx, db, ev); err != nil {
				return api.ServerError(c, err.Error())
			}
		}
		return api.Success(c, api.EventData{Event: ev}, "Comment added Successfully")
	}
}
