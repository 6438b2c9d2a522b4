package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/anonto42/wanderlog/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepository implements UserRepository on the users collection,
// keeping back-references as embedded arrays.
type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{collection: db.Collection("users")}
}

// EnsureIndexes creates the unique username index the repository relies on.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "firebaseUid", Value: 1}}, Options: options.Index().SetSparse(true)},
		{Keys: bson.D{{Key: "comments.commentId", Value: 1}}},
	})
	return err
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = primitive.NewObjectID().Hex()
	}
	if user.Posts == nil {
		user.Posts = []string{}
	}
	if user.Comments == nil {
		user.Comments = []models.UserComment{}
	}
	_, err := r.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (r *MongoUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoUserRepository) GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"firebaseUid": firebaseUID})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	if err := r.collection.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) AddPostRef(ctx context.Context, username, postID string) error {
	return r.updateUser(ctx, username, bson.M{"$addToSet": bson.M{"posts": postID}})
}

func (r *MongoUserRepository) AddCommentRef(ctx context.Context, username string, ref models.UserComment) error {
	return r.updateUser(ctx, username, bson.M{"$push": bson.M{"comments": ref}})
}

func (r *MongoUserRepository) updateUser(ctx context.Context, username string, update bson.M) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"username": username}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoUserRepository) UpdateCommentRef(ctx context.Context, commentID, content string, updatedAt time.Time) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"comments.commentId": commentID},
		bson.M{"$set": bson.M{
			"comments.$.content":   content,
			"comments.$.updatedAt": updatedAt,
		}},
	)
	return err
}

func (r *MongoUserRepository) RemoveCommentRef(ctx context.Context, commentID string) error {
	_, err := r.collection.UpdateMany(ctx,
		bson.M{"comments.commentId": commentID},
		bson.M{"$pull": bson.M{"comments": bson.M{"commentId": commentID}}},
	)
	return err
}

func (r *MongoUserRepository) RemovePostRefs(ctx context.Context, postID string) error {
	_, err := r.collection.UpdateMany(ctx,
		bson.M{"$or": bson.A{bson.M{"posts": postID}, bson.M{"comments.post": postID}}},
		bson.M{"$pull": bson.M{
			"posts":    postID,
			"comments": bson.M{"post": postID},
		}},
	)
	return err
}
