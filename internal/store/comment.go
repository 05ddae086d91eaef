package store

import (
	"context"
	"fmt"

	"hiking-planner/internal/database"
	"hiking-planner/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const commentsCollection = "comments"

func GetCommentByID(ctx context.Context, db database.DB, id primitive.ObjectID) (*model.Comment, error) {
	cm := &model.Comment{}
	err := db.Collection(commentsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(cm)
	if err != nil {
		return nil, fmt.Errorf("GetCommentByID: %w", err)
	}
	return cm, nil
}

func ListComments(ctx context.Context, db database.DB) ([]model.Comment, error) {
	cur, err := db.Collection(commentsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("ListComments: %w", err)
	}
	var comments []model.Comment
	if err := cur.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("ListComments: %w", err)
	}
	return comments, nil
}

func CreateComment(ctx context.Context, db database.DB, cm *model.Comment) (*model.Comment, error) {
	if cm.Replies == nil {
		cm.Replies = []primitive.ObjectID{}
	}
	res, err := db.Collection(commentsCollection).InsertOne(ctx, cm)
	if err != nil {
		return nil, fmt.Errorf("CreateComment: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		cm.ID = id
	}
	return cm, nil
}

func SaveComment(ctx context.Context, db database.DB, cm *model.Comment) error {
	_, err := db.Collection(commentsCollection).UpdateOne(ctx,
		bson.M{"_id": cm.ID},
		bson.M{"$set": bson.M{
			"text":    cm.Text,
			"replies": cm.Replies,
		}},
	)
	if err != nil {
		return fmt.Errorf("SaveComment: %w", err)
	}
	return nil
}

func DeleteComment(ctx context.Context, db database.DB, id primitive.ObjectID) error {
	_, err := db.Collection(commentsCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("DeleteComment: %w", err)
	}
	return nil
}

func DeleteAllComments(ctx context.Context, db database.DB) error {
	_, err := db.Collection(commentsCollection).DeleteMany(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("DeleteAllComments: %w", err)
	}
	return nil
}
