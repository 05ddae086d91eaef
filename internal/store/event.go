package store

import (
	"context"
	"fmt"
	"time"

	"hiking-planner/internal/database"
	"hiking-planner/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const eventsCollection = "events"

func GetEventByID(ctx context.Context, db database.DB, id primitive.ObjectID) (*model.Event, error) {
	ev := &model.Event{}
	err := db.Collection(eventsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(ev)
	if err != nil {
		return nil, fmt.Errorf("GetEventByID: %w", err)
	}
	return ev, nil
}

func CreateEvent(ctx context.Context, db database.DB, ev *model.Event) (*model.Event, error) {
	now := time.Now().UTC()
	ev.CreatedAt = now
	ev.UpdatedAt = now
	if ev.Going == nil {
		ev.Going = []primitive.ObjectID{}
	}
	if ev.Comments == nil {
		ev.Comments = []primitive.ObjectID{}
	}
	res, err := db.Collection(eventsCollection).InsertOne(ctx, ev)
	if err != nil {
		return nil, fmt.Errorf("CreateEvent: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		ev.ID = id
	}
	return ev, nil
}

func SaveEvent(ctx context.Context, db database.DB, ev *model.Event) error {
	ev.UpdatedAt = time.Now().UTC()
	_, err := db.Collection(eventsCollection).UpdateOne(ctx,
		bson.M{"_id": ev.ID},
		bson.M{"$set": bson.M{
			"name":             ev.Name,
			"description":      ev.Description,
			"shortDescription": ev.ShortDescription,
			"date":             ev.Date,
			"whatToBring":      ev.WhatToBring,
			"longitude":        ev.Longitude,
			"latitude":         ev.Latitude,
			"difficultyLevel":  ev.DifficultyLevel,
			"distance":         ev.Distance,
			"duration":         ev.Duration,
			"elevation":        ev.Elevation,
			"image":            ev.Image,
			"going":            ev.Going,
			"comments":         ev.Comments,
			"updatedAt":        ev.UpdatedAt,
		}},
	)
	if err != nil {
		return fmt.Errorf("SaveEvent: %w", err)
	}
	return nil
}
