package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/anonto42/wanderlog/backend/internal/models"
	"github.com/anonto42/wanderlog/backend/internal/repositories"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -destination=./mock/post_service.go -package=mock -source=post_service.go

// PostService owns the post aggregate: the post document together with its
// comment thread and like set.
//
// Every mutation reads the whole post, changes it in memory and writes it
// back guarded by the version it read. Two requests racing on the same post
// cannot silently overwrite each other; the loser gets ErrConflict and
// nothing is retried.
type PostService interface {
	CreatePost(ctx context.Context, creator string, req models.CreatePostRequest) (*models.PostWithCountry, error)
	GetPost(ctx context.Context, id string) (*models.PostWithCountry, error)
	ListPosts(ctx context.Context) ([]models.PostWithCountry, error)
	ListUserPosts(ctx context.Context, username string) ([]models.PostWithCountry, error)
	DeletePost(ctx context.Context, id string) error

	AddComment(ctx context.Context, postID, author, content string) (*models.Comment, error)
	UpdateComment(ctx context.Context, postID, commentID, username, content string) (*models.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID, username string) error
	ToggleLike(ctx context.Context, postID, liker string) ([]string, error)
}

type postService struct {
	posts     repositories.PostRepository
	countries repositories.CountryRepository
	users     repositories.UserRepository
	log       logrus.FieldLogger
	now       func() time.Time
}

func NewPostService(
	posts repositories.PostRepository,
	countries repositories.CountryRepository,
	users repositories.UserRepository,
	logger logrus.FieldLogger,
) PostService {
	return &postService{
		posts:     posts,
		countries: countries,
		users:     users,
		log:       logger,
		now:       func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

func (s *postService) CreatePost(ctx context.Context, creator string, req models.CreatePostRequest) (*models.PostWithCountry, error) {
	country, err := s.countries.GetCountryByName(ctx, req.Country)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCountryNotFound
		}
		return nil, err
	}

	images := req.AdditionalImages
	if images == nil {
		images = []string{}
	}
	post := &models.Post{
		Title:            req.Title,
		Author:           req.Author,
		Content:          req.Content,
		MainImage:        req.MainImage,
		AdditionalImages: images,
		CountryID:        country.ID,
		City:             req.City,
		Likes:            []string{},
		Comments:         []models.Comment{},
		CreatedAt:        s.now(),
	}
	if err := s.posts.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	if creator != "" {
		s.mirror("add post ref", s.users.AddPostRef(ctx, creator, post.ID.Hex()))
	}

	return &models.PostWithCountry{Post: *post, Country: country}, nil
}

func (s *postService) GetPost(ctx context.Context, id string) (*models.PostWithCountry, error) {
	post, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	country, err := s.countries.GetCountryByID(ctx, post.CountryID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	return &models.PostWithCountry{Post: *post, Country: country}, nil
}

// ListPosts returns every post in store order. Callers must not assume the
// order is chronological.
func (s *postService) ListPosts(ctx context.Context) ([]models.PostWithCountry, error) {
	posts, err := s.posts.GetAllPosts(ctx)
	if err != nil {
		return nil, err
	}
	return s.joinCountries(ctx, posts)
}

// ListUserPosts resolves the user's post references against the post store,
// in reference order. References to posts that no longer exist are dropped.
func (s *postService) ListUserPosts(ctx context.Context, username string) ([]models.PostWithCountry, error) {
	user, err := s.users.GetUserByUsername(ctx, models.NormalizeUsername(username))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	found, err := s.posts.GetPostsByIDs(ctx, user.Posts)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Post, len(found))
	for _, p := range found {
		byID[p.ID.Hex()] = p
	}

	posts := make([]models.Post, 0, len(found))
	for _, ref := range user.Posts {
		if p, ok := byID[ref]; ok {
			posts = append(posts, p)
			delete(byID, ref)
		}
	}
	return s.joinCountries(ctx, posts)
}

func (s *postService) DeletePost(ctx context.Context, id string) error {
	if err := s.posts.DeletePost(ctx, id); err != nil {
		return postErr(err)
	}
	s.mirror("remove post refs", s.users.RemovePostRefs(ctx, id))
	return nil
}

func (s *postService) AddComment(ctx context.Context, postID, author, content string) (*models.Comment, error) {
	post, err := s.load(ctx, postID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(author) == "" {
		return nil, ErrMissingUsername
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrMissingContent
	}

	now := s.now()
	comment := models.Comment{
		ID:        primitive.NewObjectID(),
		Author:    author,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	post.AppendComment(comment)

	if err := s.posts.ReplacePost(ctx, post); err != nil {
		return nil, postErr(err)
	}

	s.mirror("add comment ref", s.users.AddCommentRef(ctx, models.NormalizeUsername(author), models.UserComment{
		PostID:    post.ID.Hex(),
		CommentID: comment.ID.Hex(),
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}))

	return &comment, nil
}

// UpdateComment replaces a comment's content in place. It is the only
// in-place mutation of the thread; createdAt is never touched.
func (s *postService) UpdateComment(ctx context.Context, postID, commentID, username, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrMissingContent
	}
	if strings.TrimSpace(username) == "" {
		return nil, ErrMissingUsername
	}

	post, err := s.load(ctx, postID)
	if err != nil {
		return nil, err
	}

	i, ok := lookupComment(post, commentID)
	if !ok {
		return nil, ErrCommentNotFound
	}

	comment := &post.Comments[i]
	updatedAt := s.now()
	if updatedAt.Before(comment.UpdatedAt) {
		updatedAt = comment.UpdatedAt
	}
	comment.Content = content
	comment.UpdatedAt = updatedAt

	if err := s.posts.ReplacePost(ctx, post); err != nil {
		return nil, postErr(err)
	}

	updated := *comment
	s.mirror("update comment ref", s.users.UpdateCommentRef(ctx, commentID, updated.Content, updated.UpdatedAt))
	return &updated, nil
}

func (s *postService) DeleteComment(ctx context.Context, postID, commentID, username string) error {
	post, err := s.load(ctx, postID)
	if err != nil {
		return err
	}
	if strings.TrimSpace(username) == "" {
		return ErrMissingUsername
	}

	i, ok := lookupComment(post, commentID)
	if !ok {
		return ErrCommentNotFound
	}
	post.RemoveComment(post.Comments[i].ID)

	if err := s.posts.ReplacePost(ctx, post); err != nil {
		return postErr(err)
	}

	s.mirror("remove comment ref", s.users.RemoveCommentRef(ctx, commentID))
	return nil
}

// ToggleLike flips liker's membership in the like set and returns the
// resulting set. Calling it twice restores the original set.
func (s *postService) ToggleLike(ctx context.Context, postID, liker string) ([]string, error) {
	post, err := s.load(ctx, postID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(liker) == "" {
		return nil, ErrMissingUsername
	}

	post.ToggleLike(liker)

	if err := s.posts.ReplacePost(ctx, post); err != nil {
		return nil, postErr(err)
	}

	likes := make([]string, len(post.Likes))
	copy(likes, post.Likes)
	return likes, nil
}

func (s *postService) load(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.posts.GetPostByID(ctx, id)
	if err != nil {
		return nil, postErr(err)
	}
	if post.Likes == nil {
		post.Likes = []string{}
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}
	return post, nil
}

func (s *postService) joinCountries(ctx context.Context, posts []models.Post) ([]models.PostWithCountry, error) {
	seen := make(map[primitive.ObjectID]bool)
	ids := make([]primitive.ObjectID, 0)
	for _, p := range posts {
		if !p.CountryID.IsZero() && !seen[p.CountryID] {
			seen[p.CountryID] = true
			ids = append(ids, p.CountryID)
		}
	}

	countries, err := s.countries.GetCountriesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]*models.Country, len(countries))
	for i := range countries {
		byID[countries[i].ID] = &countries[i]
	}

	out := make([]models.PostWithCountry, 0, len(posts))
	for _, p := range posts {
		out = append(out, models.PostWithCountry{Post: p, Country: byID[p.CountryID]})
	}
	return out, nil
}

// mirror logs a failed back-reference write. The post is already persisted
// and stays authoritative, so the failure is not returned.
func (s *postService) mirror(op string, err error) {
	if err == nil || errors.Is(err, repositories.ErrNotFound) {
		return
	}
	s.log.WithError(err).WithField("op", op).Warn("user back-reference not updated")
}

func lookupComment(post *models.Post, commentID string) (int, bool) {
	id, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return 0, false
	}
	i, ok := post.CommentIndex()[id]
	return i, ok
}

func postErr(err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return ErrPostNotFound
	case errors.Is(err, repositories.ErrVersionConflict):
		return ErrConflict
	}
	return err
}
