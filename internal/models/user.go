package models

import (
	"strings"
	"time"
)

// User is an account in the identity store. Posts and Comments mirror
// content owned by posts; they are an advisory index, never the source of
// truth.
type User struct {
	ID          string        `json:"id" bson:"_id" gorm:"primaryKey;size:24"`
	FirstName   string        `json:"firstName" bson:"firstName"`
	LastName    string        `json:"lastName" bson:"lastName"`
	Username    string        `json:"username" bson:"username" gorm:"uniqueIndex;not null"` // trimmed, lowercase
	Password    string        `json:"-" bson:"password" gorm:"not null"`                   // bcrypt hash
	CountryID   string        `json:"country" bson:"country" gorm:"size:24"`
	FirebaseUID string        `json:"-" bson:"firebaseUid,omitempty" gorm:"index"`
	Posts       []string      `json:"posts" bson:"posts" gorm:"-"`
	Comments    []UserComment `json:"comments" bson:"comments" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time     `json:"createdAt" bson:"createdAt"`
}

// UserPost is the relational form of one entry of User.Posts.
type UserPost struct {
	UserID    string `gorm:"primaryKey;size:24"`
	PostID    string `gorm:"primaryKey;size:24;index"`
	CreatedAt time.Time
}

// UserComment records a comment the user authored on a post.
type UserComment struct {
	ID        uint      `json:"-" bson:"-" gorm:"primaryKey"`
	UserID    string    `json:"-" bson:"-" gorm:"index;size:24"`
	PostID    string    `json:"post" bson:"post" gorm:"index;size:24"`
	CommentID string    `json:"commentId" bson:"commentId" gorm:"uniqueIndex;size:24"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

type RegisterRequest struct {
	FirstName   string `json:"firstName" validate:"max=50"`
	LastName    string `json:"lastName" validate:"max=50"`
	Username    string `json:"username" validate:"required,notblank,max=64"`
	Password    string `json:"password" validate:"required,max=72"`
	Country     string `json:"country" validate:"required,notblank"`
	FirebaseUID string `json:"firebaseUid,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// FirebaseLoginRequest defines the request body for Firebase login
type FirebaseLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// NormalizeUsername is the canonical form usernames are stored and looked up in.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
