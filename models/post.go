package models

import "time"

// Comment is a reply attached to a community post.
type Comment struct {
	ID        string    `bson:"id" json:"id"`
	AuthorID  string    `bson:"author_id" json:"authorId"`
	Body      string    `bson:"body" json:"body"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// Post is a community message-board entry with embedded comments.
type Post struct {
	ID        string    `bson:"id" json:"id"`
	AuthorID  string    `bson:"author_id" json:"authorId"`
	Title     string    `bson:"title" json:"title"`
	Body      string    `bson:"body" json:"body"`
	Comments  []Comment `bson:"comments" json:"comments"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
