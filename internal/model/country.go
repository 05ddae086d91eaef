// File: internal/model/country.go
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CountryState 國家下的州/省與其城市
type CountryState struct {
	Name   string   `bson:"name" json:"name"`
	Cities []string `bson:"cities" json:"cities"`
}

// Country 參考資料文件，code 唯一
type Country struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Code      string             `bson:"code" json:"code"`
	States    []CountryState     `bson:"states" json:"states"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
