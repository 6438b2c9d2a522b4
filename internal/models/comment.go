package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a sub-document of a Post. Its ID is only meaningful within the
// owning post.
type Comment struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Author    string             `json:"author" bson:"author"`
	Content   string             `json:"content" bson:"content"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Username string `json:"username"`
	Content  string `json:"content"`
}

// UpdateCommentRequest defines the request body for updating an existing comment
type UpdateCommentRequest struct {
	Username string `json:"username"`
	Content  string `json:"content"`
}

// DeleteCommentRequest carries the acting username in the body of a delete.
type DeleteCommentRequest struct {
	Username string `json:"username"`
}

// LikeRequest defines the request body for toggling a like
type LikeRequest struct {
	Username string `json:"username"`
}

// CommentIndex maps comment sub-identities to their position in the thread.
type CommentIndex map[primitive.ObjectID]int

// CommentIndex builds the sub-identity index of the post's comment thread.
func (p *Post) CommentIndex() CommentIndex {
	idx := make(CommentIndex, len(p.Comments))
	for i, c := range p.Comments {
		idx[c.ID] = i
	}
	return idx
}

// AppendComment adds c to the tail of the thread.
func (p *Post) AppendComment(c Comment) {
	p.Comments = append(p.Comments, c)
}

// RemoveComment deletes the comment with the given id, closing the gap.
// It reports false when no such comment exists.
func (p *Post) RemoveComment(id primitive.ObjectID) bool {
	i, ok := p.CommentIndex()[id]
	if !ok {
		return false
	}
	p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
	return true
}
