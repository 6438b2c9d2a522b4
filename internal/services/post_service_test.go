package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anonto42/wanderlog/backend/internal/models"
	"github.com/anonto42/wanderlog/backend/internal/repositories"
	"github.com/anonto42/wanderlog/backend/internal/repositories/mock"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestPostService_CreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("known country", func(t *testing.T) {
		f := newPostFixture(t)
		f.users.EXPECT().AddPostRef(gomock.Any(), "ada", gomock.Any()).Return(nil)

		p, err := f.svc.CreatePost(ctx, "ada", models.CreatePostRequest{
			Title:   "Gamla stan",
			Author:  "Ada",
			Country: "Sweden",
			City:    "Stockholm",
		})
		require.NoError(t, err)

		require.NotNil(t, p.Country)
		assert.Equal(t, "Sweden", p.Country.Name)
		assert.Equal(t, sweden.ID, p.CountryID)
		assert.NotNil(t, p.Likes)
		assert.Empty(t, p.Likes)
		assert.NotNil(t, p.Comments)
		assert.Empty(t, p.Comments)
		assert.NotNil(t, p.AdditionalImages)
		assert.EqualValues(t, 0, p.Version)
		assert.False(t, p.CreatedAt.IsZero())

		stored := f.docs.get(t, p.ID)
		assert.Equal(t, "Gamla stan", stored.Title)
	})

	t.Run("unknown country", func(t *testing.T) {
		f := newPostFixture(t)

		_, err := f.svc.CreatePost(ctx, "ada", models.CreatePostRequest{Title: "Lost city", Country: "Atlantis"})
		assert.ErrorIs(t, err, ErrCountryNotFound)
		assert.ErrorIs(t, err, ErrReferenceNotFound)
		assert.NotErrorIs(t, err, ErrNotFound)

		all, err := f.svc.ListPosts(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("country match is case sensitive", func(t *testing.T) {
		f := newPostFixture(t)

		_, err := f.svc.CreatePost(ctx, "", models.CreatePostRequest{Country: "sweden"})
		assert.ErrorIs(t, err, ErrReferenceNotFound)
	})
}

func TestPostService_GetPost(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)
	created := f.createPost(t, "Sweden")

	got, err := f.svc.GetPost(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	require.NotNil(t, got.Country)
	assert.Equal(t, "SWE", got.Country.Alpha3Code)

	for _, id := range []string{primitive.NewObjectID().Hex(), "not-an-id", ""} {
		_, err := f.svc.GetPost(ctx, id)
		assert.ErrorIs(t, err, ErrPostNotFound, id)
		assert.ErrorIs(t, err, ErrNotFound, id)
	}
}

func TestPostService_GetPost_DanglingCountry(t *testing.T) {
	ctrl := gomock.NewController(t)
	posts := mock.NewMockPostRepository(ctrl)
	countries := mock.NewMockCountryRepository(ctrl)
	logger, _ := test.NewNullLogger()

	post := &models.Post{ID: primitive.NewObjectID(), CountryID: primitive.NewObjectID()}
	posts.EXPECT().GetPostByID(gomock.Any(), post.ID.Hex()).Return(post, nil)
	countries.EXPECT().GetCountryByID(gomock.Any(), post.CountryID).Return(nil, repositories.ErrNotFound)

	svc := NewPostService(posts, countries, mock.NewMockUserRepository(ctrl), logger)

	got, err := svc.GetPost(context.Background(), post.ID.Hex())
	require.NoError(t, err)
	assert.Nil(t, got.Country)
	assert.NotNil(t, got.Likes)
	assert.NotNil(t, got.Comments)
}

func TestPostService_ListPosts(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)

	a := f.createPost(t, "Sweden")
	b := f.createPost(t, "Norway")
	c := f.createPost(t, "Sweden")

	all, err := f.svc.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	byID := map[primitive.ObjectID]models.PostWithCountry{}
	for _, p := range all {
		byID[p.ID] = p
	}
	assert.Equal(t, "Sweden", byID[a.ID].Country.Name)
	assert.Equal(t, "Norway", byID[b.ID].Country.Name)
	assert.Equal(t, "Sweden", byID[c.ID].Country.Name)
}

func TestPostService_ListUserPosts(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)

	first := f.createPost(t, "Sweden")
	second := f.createPost(t, "Norway")
	stale := primitive.NewObjectID().Hex()

	f.users.EXPECT().GetUserByUsername(gomock.Any(), "ada").Return(&models.User{
		Username: "ada",
		Posts:    []string{second.ID.Hex(), stale, first.ID.Hex()},
	}, nil)

	posts, err := f.svc.ListUserPosts(ctx, "  Ada ")
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, "Norway", posts[0].Country.Name)
	assert.Equal(t, first.ID, posts[1].ID)

	f.users.EXPECT().GetUserByUsername(gomock.Any(), "ghost").Return(nil, repositories.ErrNotFound)
	_, err = f.svc.ListUserPosts(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPostService_DeletePost(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)
	f.ignoreRefs()

	p := f.createPost(t, "Sweden")
	comment, err := f.svc.AddComment(ctx, p.ID.Hex(), "ada", "nice trip")
	require.NoError(t, err)

	require.NoError(t, f.svc.DeletePost(ctx, p.ID.Hex()))

	err = f.svc.DeletePost(ctx, p.ID.Hex())
	assert.ErrorIs(t, err, ErrPostNotFound)

	// former comments are unaddressable
	_, err = f.svc.UpdateComment(ctx, p.ID.Hex(), comment.ID.Hex(), "ada", "edited")
	assert.ErrorIs(t, err, ErrPostNotFound)
	err = f.svc.DeleteComment(ctx, p.ID.Hex(), comment.ID.Hex(), "ada")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostService_DeletePost_DropsBackReferences(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)
	p := f.createPost(t, "Sweden")

	f.users.EXPECT().RemovePostRefs(gomock.Any(), p.ID.Hex()).Return(nil)
	require.NoError(t, f.svc.DeletePost(ctx, p.ID.Hex()))
}

func TestPostService_AddComment(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)
	p := f.createPost(t, "Sweden")
	missing := primitive.NewObjectID().Hex()

	tt := []struct {
		name    string
		postID  string
		author  string
		content string
		err     error
	}{
		{name: "unknown post checked before username", postID: missing, author: "", content: "", err: ErrPostNotFound},
		{name: "missing username", postID: p.ID.Hex(), author: "", content: "hi", err: ErrMissingUsername},
		{name: "blank username", postID: p.ID.Hex(), author: "  ", content: "hi", err: ErrMissingUsername},
		{name: "missing content", postID: p.ID.Hex(), author: "ada", content: "", err: ErrMissingContent},
		{name: "blank content", postID: p.ID.Hex(), author: "ada", content: " \n\t", err: ErrMissingContent},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.AddComment(ctx, tc.postID, tc.author, tc.content)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	assert.Empty(t, f.docs.get(t, p.ID).Comments, "failed adds must not mutate the post")
}

func TestPostService_AddComment_AppendsAtTail(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)
	p := f.createPost(t, "Sweden")

	f.users.EXPECT().AddCommentRef(gomock.Any(), "ada", gomock.Any()).Return(nil).Times(3)

	for i, content := range []string{"first", "second", "third"} {
		before := len(f.docs.get(t, p.ID).Comments)

		c, err := f.svc.AddComment(ctx, p.ID.Hex(), "Ada", content)
		require.NoError(t, err)
		assert.Equal(t, "Ada", c.Author)
		assert.False(t, c.ID.IsZero())
		assert.Equal(t, c.CreatedAt, c.UpdatedAt)

		stored := f.docs.get(t, p.ID)
		require.Len(t, stored.Comments, before+1, "comment %d", i)
		assert.Equal(t, *c, stored.Comments[len(stored.Comments)-1])
	}

	stored := f.docs.get(t, p.ID)
	assert.Equal(t, "first", stored.Comments[0].Content)
	assert.Equal(t, "third", stored.Comments[2].Content)
	assert.EqualValues(t, 3, stored.Version)
}

func TestPostService_UpdateComment(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)
	f.ignoreRefs()
	p := f.createPost(t, "Sweden")

	added, err := f.svc.AddComment(ctx, p.ID.Hex(), "ada", "nice trip")
	require.NoError(t, err)

	updated, err := f.svc.UpdateComment(ctx, p.ID.Hex(), added.ID.Hex(), "ada", "even nicer")
	require.NoError(t, err)
	assert.Equal(t, "even nicer", updated.Content)
	assert.Equal(t, added.ID, updated.ID)
	assert.Equal(t, added.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(added.UpdatedAt))

	stored := f.docs.get(t, p.ID)
	require.Len(t, stored.Comments, 1)
	assert.Equal(t, *updated, stored.Comments[0])
}

func TestPostService_UpdateComment_UpdatedAtNeverGoesBack(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)
	f.ignoreRefs()
	p := f.createPost(t, "Sweden")

	added, err := f.svc.AddComment(ctx, p.ID.Hex(), "ada", "nice trip")
	require.NoError(t, err)

	f.clock.Set(added.UpdatedAt.Add(-time.Hour))

	updated, err := f.svc.UpdateComment(ctx, p.ID.Hex(), added.ID.Hex(), "ada", "edited")
	require.NoError(t, err)
	assert.False(t, updated.UpdatedAt.Before(added.UpdatedAt))
	assert.Equal(t, added.CreatedAt, updated.CreatedAt)
}

func TestPostService_UpdateComment_Errors(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)
	f.ignoreRefs()
	p := f.createPost(t, "Sweden")
	c, err := f.svc.AddComment(ctx, p.ID.Hex(), "ada", "nice trip")
	require.NoError(t, err)

	missing := primitive.NewObjectID().Hex()

	tt := []struct {
		name      string
		postID    string
		commentID string
		username  string
		content   string
		err       error
	}{
		{name: "content checked before post", postID: missing, commentID: c.ID.Hex(), username: "ada", content: "", err: ErrMissingContent},
		{name: "username checked before post", postID: missing, commentID: c.ID.Hex(), username: "", content: "x", err: ErrMissingUsername},
		{name: "unknown post", postID: missing, commentID: c.ID.Hex(), username: "ada", content: "x", err: ErrPostNotFound},
		{name: "unknown comment", postID: p.ID.Hex(), commentID: missing, username: "ada", content: "x", err: ErrCommentNotFound},
		{name: "malformed comment id", postID: p.ID.Hex(), commentID: "nope", username: "ada", content: "x", err: ErrCommentNotFound},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.UpdateComment(ctx, tc.postID, tc.commentID, tc.username, tc.content)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	assert.Equal(t, "nice trip", f.docs.get(t, p.ID).Comments[0].Content)
}

func TestPostService_DeleteComment(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)
	f.ignoreRefs()
	p := f.createPost(t, "Sweden")

	var ids []primitive.ObjectID
	for _, content := range []string{"a", "b", "c"} {
		c, err := f.svc.AddComment(ctx, p.ID.Hex(), "ada", content)
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}

	require.NoError(t, f.svc.DeleteComment(ctx, p.ID.Hex(), ids[1].Hex(), "ada"))

	stored := f.docs.get(t, p.ID)
	require.Len(t, stored.Comments, 2)
	assert.Equal(t, "a", stored.Comments[0].Content)
	assert.Equal(t, "c", stored.Comments[1].Content)

	err := f.svc.DeleteComment(ctx, p.ID.Hex(), ids[1].Hex(), "ada")
	assert.ErrorIs(t, err, ErrCommentNotFound)
	assert.Len(t, f.docs.get(t, p.ID).Comments, 2)
}

func TestPostService_DeleteComment_CheckOrder(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)
	p := f.createPost(t, "Sweden")

	err := f.svc.DeleteComment(ctx, primitive.NewObjectID().Hex(), "whatever", "")
	assert.ErrorIs(t, err, ErrPostNotFound)

	err = f.svc.DeleteComment(ctx, p.ID.Hex(), primitive.NewObjectID().Hex(), "")
	assert.ErrorIs(t, err, ErrMissingUsername)
}

func TestPostService_ToggleLike(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)
	p := f.createPost(t, "Sweden")

	likes, err := f.svc.ToggleLike(ctx, p.ID.Hex(), "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, likes)

	likes, err = f.svc.ToggleLike(ctx, p.ID.Hex(), "bob")
	require.NoError(t, err)
	assert.NotNil(t, likes)
	assert.Empty(t, likes)
}

func TestPostService_ToggleLike_Involution(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)
	p := f.createPost(t, "Sweden")

	for _, u := range []string{"ada", "bob", "cy"} {
		_, err := f.svc.ToggleLike(ctx, p.ID.Hex(), u)
		require.NoError(t, err)
	}
	original := f.docs.get(t, p.ID).Likes

	for _, u := range []string{"bob", "dee"} {
		_, err := f.svc.ToggleLike(ctx, p.ID.Hex(), u)
		require.NoError(t, err)
		likes, err := f.svc.ToggleLike(ctx, p.ID.Hex(), u)
		require.NoError(t, err)
		assert.ElementsMatch(t, original, likes, u)
	}
}

func TestPostService_ToggleLike_Errors(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)
	p := f.createPost(t, "Sweden")

	_, err := f.svc.ToggleLike(ctx, primitive.NewObjectID().Hex(), "")
	assert.ErrorIs(t, err, ErrPostNotFound)

	_, err = f.svc.ToggleLike(ctx, p.ID.Hex(), "")
	assert.ErrorIs(t, err, ErrMissingUsername)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPostService_LostRaceIsConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	posts := mock.NewMockPostRepository(ctrl)
	logger, _ := test.NewNullLogger()
	svc := NewPostService(posts, mock.NewMockCountryRepository(ctrl), mock.NewMockUserRepository(ctrl), logger)

	id := primitive.NewObjectID()
	posts.EXPECT().GetPostByID(gomock.Any(), id.Hex()).Return(&models.Post{ID: id, Version: 4}, nil)
	posts.EXPECT().ReplacePost(gomock.Any(), gomock.Any()).Return(repositories.ErrVersionConflict)

	_, err := svc.ToggleLike(context.Background(), id.Hex(), "bob")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestPostService_InterleavedWritersDoNotLoseUpdates(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)
	f.ignoreRefs()
	p := f.createPost(t, "Sweden")

	// A second writer commits between our read and write.
	stale := f.docs.get(t, p.ID)
	_, err := f.svc.ToggleLike(ctx, p.ID.Hex(), "bob")
	require.NoError(t, err)

	stale.ToggleLike("eve")
	err = f.posts.ReplacePost(ctx, &stale)
	assert.ErrorIs(t, err, repositories.ErrVersionConflict)

	assert.Equal(t, []string{"bob"}, f.docs.get(t, p.ID).Likes)
}

func TestPostService_BackReferenceFailureIsLogged(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)
	p := f.createPost(t, "Sweden")

	f.users.EXPECT().AddCommentRef(gomock.Any(), "ada", gomock.Any()).Return(errors.New("identity store down"))

	c, err := f.svc.AddComment(ctx, p.ID.Hex(), "ada", "nice trip")
	require.NoError(t, err)
	assert.Len(t, f.docs.get(t, p.ID).Comments, 1)

	entry := f.logs.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "add comment ref", entry.Data["op"])

	// an unknown author has no back-references to keep
	f.users.EXPECT().UpdateCommentRef(gomock.Any(), c.ID.Hex(), "edited", gomock.Any()).Return(repositories.ErrNotFound)
	f.logs.Reset()
	_, err = f.svc.UpdateComment(ctx, p.ID.Hex(), c.ID.Hex(), "ada", "edited")
	require.NoError(t, err)
	assert.Empty(t, f.logs.AllEntries())
}
