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

const communitiesCollection = "communities"

func GetCommunityByID(ctx context.Context, db database.DB, id primitive.ObjectID) (*model.Community, error) {
	cm := &model.Community{}
	err := db.Collection(communitiesCollection).FindOne(ctx, bson.M{"_id": id}).Decode(cm)
	if err != nil {
		return nil, fmt.Errorf("GetCommunityByID: %w", err)
	}
	return cm, nil
}

func ListCommunities(ctx context.Context, db database.DB) ([]model.Community, error) {
	cur, err := db.Collection(communitiesCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("ListCommunities: %w", err)
	}
	var communities []model.Community
	if err := cur.All(ctx, &communities); err != nil {
		return nil, fmt.Errorf("ListCommunities: %w", err)
	}
	return communities, nil
}

// ListCommunitiesByMember 僅列出指定使用者為成員的社群
func ListCommunitiesByMember(ctx context.Context, db database.DB, member primitive.ObjectID) ([]model.Community, error) {
	cur, err := db.Collection(communitiesCollection).Find(ctx, bson.M{"members": member})
	if err != nil {
		return nil, fmt.Errorf("ListCommunitiesByMember: %w", err)
	}
	var communities []model.Community
	if err := cur.All(ctx, &communities); err != nil {
		return nil, fmt.Errorf("ListCommunitiesByMember: %w", err)
	}
	return communities, nil
}

func CreateCommunity(ctx context.Context, db database.DB, cm *model.Community) (*model.Community, error) {
	now := time.Now().UTC()
	cm.CreatedAt = now
	cm.UpdatedAt = now
	if cm.Members == nil {
		cm.Members = []primitive.ObjectID{}
	}
	if cm.Events == nil {
		cm.Events = []primitive.ObjectID{}
	}
	res, err := db.Collection(communitiesCollection).InsertOne(ctx, cm)
	if err != nil {
		return nil, fmt.Errorf("CreateCommunity: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		cm.ID = id
	}
	return cm, nil
}

func SaveCommunity(ctx context.Context, db database.DB, cm *model.Community) error {
	cm.UpdatedAt = time.Now().UTC()
	_, err := db.Collection(communitiesCollection).UpdateOne(ctx,
		bson.M{"_id": cm.ID},
		bson.M{"$set": bson.M{
			"name":             cm.Name,
			"description":      cm.Description,
			"shortDescription": cm.ShortDescription,
			"image":            cm.Image,
			"members":          cm.Members,
			"events":           cm.Events,
			"updatedAt":        cm.UpdatedAt,
		}},
	)
	if err != nil {
		return fmt.Errorf("SaveCommunity: %w", err)
	}
	return nil
}

func DeleteCommunity(ctx context.Context, db database.DB, id primitive.ObjectID) error {
	_, err := db.Collection(communitiesCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("DeleteCommunity: %w", err)
	}
	return nil
}
