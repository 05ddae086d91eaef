// File: internal/model/event.go
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 難度等級，對應原始資料的 enum
const (
	DifficultyEasy     = "Easy"
	DifficultyModerate = "Moderate"
	DifficultyHard     = "Hard"
)

// Event 健行活動文件，隸屬於單一社群
type Event struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name             string               `bson:"name" json:"name"`
	Description      string               `bson:"description" json:"description"`
	ShortDescription string               `bson:"shortDescription" json:"shortDescription"`
	Date             time.Time            `bson:"date" json:"date"`
	WhatToBring      []string             `bson:"whatToBring" json:"whatToBring"`
	Longitude        float64              `bson:"longitude" json:"longitude"`
	Latitude         float64              `bson:"latitude" json:"latitude"`
	DifficultyLevel  string               `bson:"difficultyLevel" json:"difficultyLevel"`
	Distance         float64              `bson:"distance" json:"distance"`
	Duration         float64              `bson:"duration" json:"duration"`
	Elevation        float64              `bson:"elevation" json:"elevation"`
	Image            string               `bson:"image,omitempty" json:"image,omitempty"`
	Community        primitive.ObjectID   `bson:"community" json:"community"`
	Going            []primitive.ObjectID `bson:"going" json:"going"`
	Comments         []primitive.ObjectID `bson:"comments" json:"comments"`
	CreatedAt        time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time            `bson:"updatedAt" json:"updatedAt"`
}
