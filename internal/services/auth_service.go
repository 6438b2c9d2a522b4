package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/anonto42/wanderlog/backend/internal/models"
	"github.com/anonto42/wanderlog/backend/internal/repositories"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -destination=./mock/auth_service.go -package=mock -source=auth_service.go

const DefaultSessionTTL = time.Hour

// AuthService registers accounts and gates requests on server-side sessions.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.Session, error)
	LoginWithFirebase(ctx context.Context, idToken string) (*models.Session, error)
	Authorize(ctx context.Context, sessionID string) (string, error)
	Status(ctx context.Context, sessionID string) models.SessionStatus
	Logout(ctx context.Context, sessionID string) error
}

// TokenVerifier checks Firebase ID tokens. *auth.Client implements it.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type AuthOption func(*authService)

// WithFirebase enables LoginWithFirebase.
func WithFirebase(v TokenVerifier) AuthOption {
	return func(s *authService) { s.firebase = v }
}

func WithSessionTTL(ttl time.Duration) AuthOption {
	return func(s *authService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

type authService struct {
	users     repositories.UserRepository
	countries repositories.CountryRepository
	sessions  repositories.SessionStore
	hasher    CredentialHasher
	firebase  TokenVerifier
	ttl       time.Duration
	log       logrus.FieldLogger
	now       func() time.Time
	newID     func() string
}

func NewAuthService(
	users repositories.UserRepository,
	countries repositories.CountryRepository,
	sessions repositories.SessionStore,
	hasher CredentialHasher,
	logger logrus.FieldLogger,
	opts ...AuthOption,
) AuthService {
	s := &authService{
		users:     users,
		countries: countries,
		sessions:  sessions,
		hasher:    hasher,
		ttl:       DefaultSessionTTL,
		log:       logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	country, err := s.countries.GetCountryByName(ctx, req.Country)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCountryNotFound
		}
		return nil, err
	}

	username := models.NormalizeUsername(req.Username)
	if username == "" || req.Password == "" {
		return nil, ErrValidation
	}

	_, err = s.users.GetUserByUsername(ctx, username)
	switch {
	case err == nil:
		return nil, ErrUsernameTaken
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Username:    username,
		Password:    hash,
		CountryID:   country.ID.Hex(),
		FirebaseUID: req.FirebaseUID,
		Posts:       []string{},
		Comments:    []models.UserComment{},
		CreatedAt:   s.now().UTC(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		// the unique index is the arbiter when two registrations race
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	s.log.WithField("username", username).Info("user registered")
	return user, nil
}

// Login verifies the credentials and persists a new session before
// returning it. Unknown users and wrong passwords are indistinguishable.
func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.Session, error) {
	username := models.NormalizeUsername(req.Username)
	if username == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.hasher.Compare(user.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.openSession(ctx, user.Username)
}

func (s *authService) LoginWithFirebase(ctx context.Context, idToken string) (*models.Session, error) {
	if s.firebase == nil {
		return nil, ErrUnauthorized
	}

	token, err := s.firebase.VerifyIDToken(ctx, idToken)
	if err != nil {
		s.log.WithError(err).Debug("firebase token rejected")
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetUserByFirebaseUID(ctx, token.UID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	return s.openSession(ctx, user.Username)
}

func (s *authService) openSession(ctx context.Context, username string) (*models.Session, error) {
	session := &models.Session{
		ID:         s.newID(),
		IsLoggedIn: true,
		Username:   username,
		ExpiresAt:  s.now().Add(s.ttl).UTC(),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Authorize resolves a session id to the logged-in username. It never
// creates or extends a session. Absent, expired and logged-out sessions are
// ErrUnauthorized; a failing session store is returned as is.
func (s *authService) Authorize(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", ErrUnauthorized
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, repositories.ErrNotFound) {
		return "", ErrUnauthorized
	}
	if err != nil {
		return "", fmt.Errorf("session lookup: %w", err)
	}
	if !session.IsLoggedIn || session.Expired(s.now()) {
		return "", ErrUnauthorized
	}
	return session.Username, nil
}

func (s *authService) Status(ctx context.Context, sessionID string) models.SessionStatus {
	username, err := s.Authorize(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, ErrUnauthorized) {
			s.log.WithError(err).Warn("session status unavailable")
		}
		return models.SessionStatus{IsLoggedIn: false}
	}
	return models.SessionStatus{IsLoggedIn: true, Username: username}
}

// Logout destroys the session unconditionally. Logging out without a
// session is not an error.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Destroy(ctx, sessionID)
}
