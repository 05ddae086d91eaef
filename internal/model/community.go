// File: internal/model/community.go
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Community 社群文件
type Community struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name             string               `bson:"name" json:"name"`
	Description      string               `bson:"description" json:"description"`
	ShortDescription string               `bson:"shortDescription" json:"shortDescription"`
	Image            string               `bson:"image,omitempty" json:"image,omitempty"`
	Members          []primitive.ObjectID `bson:"members" json:"members"`
	Events           []primitive.ObjectID `bson:"events" json:"events"`
	CreatedAt        time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time            `bson:"updatedAt" json:"updatedAt"`
}
