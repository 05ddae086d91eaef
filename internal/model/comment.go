// File: internal/model/comment.go
package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Comment 留言文件，回覆以 replies 串接成討論串
type Comment struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	PostedBy primitive.ObjectID   `bson:"postedBy" json:"postedBy"`
	Text     string               `bson:"text" json:"text"`
	Replies  []primitive.ObjectID `bson:"replies" json:"replies"`
}
