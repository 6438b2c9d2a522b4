package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/anonto42/wanderlog/backend/internal/models"
	"github.com/anonto42/wanderlog/backend/internal/repositories"
	"github.com/anonto42/wanderlog/backend/internal/repositories/mock"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

var sweden = models.Country{
	ID:         primitive.NewObjectID(),
	Name:       "Sweden",
	Alpha3Code: "SWE",
	Capital:    "Stockholm",
	Population: 10353442,
	Flags:      models.Flags{PNG: "https://flagcdn.com/w320/se.png"},
	Currencies: []models.Currency{{Code: "SEK", Name: "Swedish krona", Symbol: "kr"}},
	Languages:  []models.Language{{Name: "Swedish"}},
}

var norway = models.Country{
	ID:         primitive.NewObjectID(),
	Name:       "Norway",
	Alpha3Code: "NOR",
}

// postDocs is an in-memory post collection behind a MockPostRepository. It
// keeps copies, so callers only see their changes after a write, and checks
// versions the way the Mongo repository does.
type postDocs struct {
	mu    sync.Mutex
	docs  map[primitive.ObjectID]models.Post
	order []primitive.ObjectID
}

func newPostDocs(ctrl *gomock.Controller) (*mock.MockPostRepository, *postDocs) {
	d := &postDocs{docs: make(map[primitive.ObjectID]models.Post)}
	m := mock.NewMockPostRepository(ctrl)

	m.EXPECT().CreatePost(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *models.Post) error {
		d.mu.Lock()
		defer d.mu.Unlock()
		if p.ID.IsZero() {
			p.ID = primitive.NewObjectID()
		}
		p.Version = 0
		d.docs[p.ID] = clonePost(*p)
		d.order = append(d.order, p.ID)
		return nil
	}).AnyTimes()

	m.EXPECT().GetPostByID(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) (*models.Post, error) {
		d.mu.Lock()
		defer d.mu.Unlock()
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, repositories.ErrNotFound
		}
		p, ok := d.docs[oid]
		if !ok {
			return nil, repositories.ErrNotFound
		}
		c := clonePost(p)
		return &c, nil
	}).AnyTimes()

	m.EXPECT().GetPostsByIDs(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ids []string) ([]models.Post, error) {
		d.mu.Lock()
		defer d.mu.Unlock()
		out := []models.Post{}
		for _, id := range ids {
			oid, err := primitive.ObjectIDFromHex(id)
			if err != nil {
				continue
			}
			if p, ok := d.docs[oid]; ok {
				out = append(out, clonePost(p))
			}
		}
		return out, nil
	}).AnyTimes()

	m.EXPECT().GetAllPosts(gomock.Any()).DoAndReturn(func(_ context.Context) ([]models.Post, error) {
		d.mu.Lock()
		defer d.mu.Unlock()
		out := []models.Post{}
		for _, id := range d.order {
			if p, ok := d.docs[id]; ok {
				out = append(out, clonePost(p))
			}
		}
		return out, nil
	}).AnyTimes()

	m.EXPECT().ReplacePost(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *models.Post) error {
		d.mu.Lock()
		defer d.mu.Unlock()
		cur, ok := d.docs[p.ID]
		if !ok {
			return repositories.ErrNotFound
		}
		if cur.Version != p.Version {
			return repositories.ErrVersionConflict
		}
		p.Version++
		d.docs[p.ID] = clonePost(*p)
		return nil
	}).AnyTimes()

	m.EXPECT().DeletePost(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) error {
		d.mu.Lock()
		defer d.mu.Unlock()
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return repositories.ErrNotFound
		}
		if _, ok := d.docs[oid]; !ok {
			return repositories.ErrNotFound
		}
		delete(d.docs, oid)
		return nil
	}).AnyTimes()

	return m, d
}

func (d *postDocs) get(t *testing.T, id primitive.ObjectID) models.Post {
	t.Helper()
	d.mu.Lock()
	defer d.mu.Unlock()
	p, ok := d.docs[id]
	if !ok {
		t.Fatalf("post %s not stored", id.Hex())
	}
	return clonePost(p)
}

func clonePost(p models.Post) models.Post {
	p.Likes = append([]string(nil), p.Likes...)
	p.AdditionalImages = append([]string(nil), p.AdditionalImages...)
	p.Comments = append([]models.Comment(nil), p.Comments...)
	return p
}

func newCountries(ctrl *gomock.Controller, countries ...models.Country) *mock.MockCountryRepository {
	m := mock.NewMockCountryRepository(ctrl)

	find := func(match func(models.Country) bool) (*models.Country, error) {
		for _, c := range countries {
			if match(c) {
				c := c
				return &c, nil
			}
		}
		return nil, repositories.ErrNotFound
	}

	m.EXPECT().GetCountryByName(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, name string) (*models.Country, error) {
		return find(func(c models.Country) bool { return c.Name == name })
	}).AnyTimes()
	m.EXPECT().GetCountryByID(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id primitive.ObjectID) (*models.Country, error) {
		return find(func(c models.Country) bool { return c.ID == id })
	}).AnyTimes()
	m.EXPECT().GetCountriesByIDs(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ids []primitive.ObjectID) ([]models.Country, error) {
		out := []models.Country{}
		for _, id := range ids {
			if c, err := find(func(c models.Country) bool { return c.ID == id }); err == nil {
				out = append(out, *c)
			}
		}
		return out, nil
	}).AnyTimes()

	return m
}

// clock hands out increasing timestamps one millisecond apart unless set.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Millisecond)
	return c.now
}

func (c *clock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

type postFixture struct {
	svc   *postService
	posts *mock.MockPostRepository
	docs  *postDocs
	users *mock.MockUserRepository
	clock *clock
	logs  *test.Hook
}

func newPostFixture(t *testing.T) *postFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	posts, docs := newPostDocs(ctrl)
	users := mock.NewMockUserRepository(ctrl)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	clk := newClock()

	svc := NewPostService(posts, newCountries(ctrl, sweden, norway), users, logger).(*postService)
	svc.now = clk.Now

	return &postFixture{svc: svc, posts: posts, docs: docs, users: users, clock: clk, logs: hook}
}

// ignoreRefs accepts any back-reference maintenance.
func (f *postFixture) ignoreRefs() {
	f.users.EXPECT().AddPostRef(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.users.EXPECT().AddCommentRef(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.users.EXPECT().UpdateCommentRef(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.users.EXPECT().RemoveCommentRef(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.users.EXPECT().RemovePostRefs(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (f *postFixture) createPost(t *testing.T, country string) *models.PostWithCountry {
	t.Helper()
	p, err := f.svc.CreatePost(context.Background(), "", models.CreatePostRequest{
		Title:   "Midsummer in Dalarna",
		Author:  "Ada",
		Content: "Maypoles everywhere.",
		Country: country,
		City:    "Leksand",
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	return p
}
