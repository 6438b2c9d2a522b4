package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/anonto42/wanderlog/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository defines the interface for user data operations. The
// post and comment reference methods maintain the advisory back-reference
// index and must never be treated as authoritative.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*models.User, error)
	AddPostRef(ctx context.Context, username, postID string) error
	AddCommentRef(ctx context.Context, username string, ref models.UserComment) error
	UpdateCommentRef(ctx context.Context, commentID, content string, updatedAt time.Time) error
	RemoveCommentRef(ctx context.Context, commentID string) error
	RemovePostRefs(ctx context.Context, postID string) error
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// MigrateUserTables creates or updates the identity tables.
func MigrateUserTables(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.UserPost{}, &models.UserComment{})
}

// CreateUser creates a new user in PostgreSQL
func (r *PostgresUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = primitive.NewObjectID().Hex()
	}
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

// GetUserByUsername retrieves a user and its back-references by username
func (r *PostgresUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getUser(ctx, "username = ?", username)
}

// GetUserByFirebaseUID retrieves a user by Firebase UID from PostgreSQL
func (r *PostgresUserRepository) GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*models.User, error) {
	return r.getUser(ctx, "firebase_uid = ?", firebaseUID)
}

func (r *PostgresUserRepository) getUser(ctx context.Context, query string, arg any) (*models.User, error) {
	db := r.db.WithContext(ctx)

	var user models.User
	if err := db.Preload("Comments").Where(query, arg).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	user.Posts = []string{}
	err := db.Model(&models.UserPost{}).
		Where("user_id = ?", user.ID).
		Order("created_at").
		Pluck("post_id", &user.Posts).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresUserRepository) userID(ctx context.Context, username string) (string, error) {
	var user models.User
	err := r.db.WithContext(ctx).Select("id").Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	return user.ID, err
}

func (r *PostgresUserRepository) AddPostRef(ctx context.Context, username, postID string) error {
	id, err := r.userID(ctx, username)
	if err != nil {
		return err
	}
	ref := models.UserPost{UserID: id, PostID: postID, CreatedAt: time.Now()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&ref).Error
}

func (r *PostgresUserRepository) AddCommentRef(ctx context.Context, username string, ref models.UserComment) error {
	id, err := r.userID(ctx, username)
	if err != nil {
		return err
	}
	ref.ID = 0
	ref.UserID = id
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&ref).Error
}

func (r *PostgresUserRepository) UpdateCommentRef(ctx context.Context, commentID, content string, updatedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.UserComment{}).
		Where("comment_id = ?", commentID).
		Updates(map[string]any{"content": content, "updated_at": updatedAt}).Error
}

func (r *PostgresUserRepository) RemoveCommentRef(ctx context.Context, commentID string) error {
	return r.db.WithContext(ctx).Where("comment_id = ?", commentID).Delete(&models.UserComment{}).Error
}

// RemovePostRefs drops the post and every comment record on it from all users.
func (r *PostgresUserRepository) RemovePostRefs(ctx context.Context, postID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.UserPost{}).Error; err != nil {
			return err
		}
		return tx.Where("post_id = ?", postID).Delete(&models.UserComment{}).Error
	})
}
