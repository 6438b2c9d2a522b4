package repositories

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/anonto42/wanderlog/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SessionStore keeps server-side session state by session id. Get returns
// ErrNotFound for absent and expired sessions alike; Destroy of an unknown id
// is not an error.
type SessionStore interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Destroy(ctx context.Context, id string) error
}

// MongoSessionStore stores sessions in the sessions collection. Expired
// documents are reaped by a TTL index and filtered out on read until then.
type MongoSessionStore struct {
	collection *mongo.Collection
}

func NewMongoSessionStore(db *mongo.Database) *MongoSessionStore {
	return &MongoSessionStore{collection: db.Collection("sessions")}
}

// EnsureIndexes creates the TTL index on expiresAt.
func (s *MongoSessionStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expiresAt", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	return err
}

func (s *MongoSessionStore) Get(ctx context.Context, id string) (*models.Session, error) {
	var session models.Session
	err := s.collection.FindOne(ctx, bson.M{
		"_id":       id,
		"expiresAt": bson.M{"$gt": time.Now()},
	}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// Save upserts the session and returns once the write is acknowledged.
func (s *MongoSessionStore) Save(ctx context.Context, session *models.Session) error {
	_, err := s.collection.ReplaceOne(ctx,
		bson.M{"_id": session.ID},
		session,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (s *MongoSessionStore) Destroy(ctx context.Context, id string) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// MemorySessionStore is a process-local SessionStore.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	now      func() time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]models.Session),
		now:      time.Now,
	}
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (*models.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || session.Expired(s.now()) {
		return nil, ErrNotFound
	}
	return &session, nil
}

func (s *MemorySessionStore) Save(_ context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.sessions {
		if existing.Expired(s.now()) {
			delete(s.sessions, id)
		}
	}
	s.sessions[session.ID] = *session
	return nil
}

func (s *MemorySessionStore) Destroy(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}
