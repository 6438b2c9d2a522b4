package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a travel post stored in MongoDB. It owns its comment
// thread and like set; both are persisted with the post as one document.
type Post struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title            string             `json:"title" bson:"title"`
	Author           string             `json:"author" bson:"author"` // display name, not a user reference
	Content          string             `json:"content" bson:"content"`
	MainImage        string             `json:"mainImage" bson:"mainImage"`
	AdditionalImages []string           `json:"additionalImages" bson:"additionalImages"`
	CountryID        primitive.ObjectID `json:"country" bson:"country"`
	City             string             `json:"city" bson:"city"`
	Likes            []string           `json:"likes" bson:"likes"`
	Comments         []Comment          `json:"comments" bson:"comments"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	// Version is checked and incremented on every write of the document.
	Version int64 `json:"-" bson:"__v"`
}

// PostWithCountry is a post joined with its reference country at read time.
// Country is nil when the referenced country no longer resolves.
type PostWithCountry struct {
	Post
	Country *Country `json:"-" bson:"-"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title            string   `json:"title" validate:"max=200"`
	Author           string   `json:"author"`
	Content          string   `json:"content"`
	MainImage        string   `json:"mainImage"`
	AdditionalImages []string `json:"additionalImages"`
	Country          string   `json:"country" validate:"required,notblank"`
	City             string   `json:"city"`
}

// HasLike reports whether username is in the like set.
func (p *Post) HasLike(username string) bool {
	for _, l := range p.Likes {
		if l == username {
			return true
		}
	}
	return false
}

// ToggleLike removes username from the like set when present and adds it
// otherwise. It returns true when the post ends up liked by username.
func (p *Post) ToggleLike(username string) bool {
	if !p.HasLike(username) {
		p.Likes = append(p.Likes, username)
		return true
	}

	kept := p.Likes[:0]
	for _, l := range p.Likes {
		if l != username {
			kept = append(kept, l)
		}
	}
	p.Likes = kept
	return false
}
