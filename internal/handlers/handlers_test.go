package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/jdelgad07/twitterclone/backend/internal/handlers"
	"github.com/jdelgad07/twitterclone/backend/internal/middleware"
	"github.com/jdelgad07/twitterclone/backend/internal/models"
	"github.com/jdelgad07/twitterclone/backend/internal/repositories"
	"github.com/jdelgad07/twitterclone/backend/internal/services"
	"github.com/jdelgad07/twitterclone/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testServer hosts the handlers over an in-memory sqlite store with a
// header-based stand-in for the auth middleware.
type testServer struct {
	e     *echo.Echo
	users repositories.UserRepository
	posts repositories.PostRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Follow{},
		&models.Block{},
		&models.Like{},
		&models.Retweet{},
	))

	users := repositories.NewPostgresUserRepository(db)
	follows := repositories.NewPostgresFollowRepository(db)
	blocks := repositories.NewPostgresBlockRepository(db)
	posts := repositories.NewPostgresPostRepository(db)
	likes := repositories.NewPostgresLikeRepository(db)
	retweets := repositories.NewPostgresRetweetRepository(db)

	e := echo.New()
	e.Validator = validators.NewValidator()

	api := e.Group("")
	api.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if uid := c.Request().Header.Get("X-Test-User"); uid != "" {
				c.Set(middleware.ContextUserIDKey, uid)
			}
			return next(c)
		}
	})

	handlers.NewRelationshipHandler(services.NewRelationshipService(users, follows, blocks)).RegisterRelationshipRoutes(api)
	handlers.NewEngagementHandler(services.NewEngagementService(users, posts, likes, retweets, blocks)).RegisterEngagementRoutes(api)
	handlers.NewPostHandler(services.NewPostService(users, posts)).RegisterPostRoutes(api)
	handlers.NewTimelineHandler(services.NewTimelineService(users, posts, likes, retweets, blocks)).RegisterTimelineRoutes(api)
	handlers.NewUserHandler(services.NewUserService(users, follows, blocks)).RegisterUserRoutes(api)

	return &testServer{e: e, users: users, posts: posts}
}

func (s *testServer) do(t *testing.T, method, path, asUser, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if asUser != "" {
		req.Header.Set("X-Test-User", asUser)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) seedUser(t *testing.T, id, username string) {
	t.Helper()
	require.NoError(t, s.users.CreateUser(&models.User{UserID: id, Username: username}))
}

func (s *testServer) seedPost(t *testing.T, authorID, text string) *models.Post {
	t.Helper()
	post := &models.Post{UserID: authorID, TextContent: text, DatePosted: time.Now().UTC()}
	require.NoError(t, s.posts.CreatePost(post))
	return post
}

func TestFollowEndpointStatusCodes(t *testing.T) {
	s := newTestServer(t)
	s.seedUser(t, "u1", "alice")
	s.seedUser(t, "u2", "bob")

	rec := s.do(t, http.MethodPost, "/follow", "", `{"followee_username":"bob"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodPost, "/follow", "u1", `{"followee_username":"bob"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPost, "/follow", "u1", `{"followee_username":"bob"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodPost, "/follow", "u1", `{"followee_username":"alice"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/follow", "u1", `{"followee_username":"nobody"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBlockThenFollowForbidden(t *testing.T) {
	s := newTestServer(t)
	s.seedUser(t, "u1", "alice")
	s.seedUser(t, "u2", "bob")

	rec := s.do(t, http.MethodPost, "/block", "u2", `{"blockee_username":"alice"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPost, "/follow", "u1", `{"followee_username":"bob"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, http.MethodPost, "/unblock", "u2", `{"blockee_username":"alice"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPost, "/follow", "u1", `{"followee_username":"bob"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLikeEndpoints(t *testing.T) {
	s := newTestServer(t)
	s.seedUser(t, "u1", "alice")
	post := s.seedPost(t, "u1", "hello")

	path := fmt.Sprintf("/posts/%d/likes", post.PostID)

	rec := s.do(t, http.MethodPost, path, "u1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPost, path, "u1", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodDelete, path, "u1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodDelete, path, "u1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodPost, "/posts/not-a-number/likes", "u1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCountsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.seedUser(t, "u1", "alice")
	s.seedUser(t, "u2", "bob")
	p1 := s.seedPost(t, "u1", "first")
	p2 := s.seedPost(t, "u1", "second")

	rec := s.do(t, http.MethodPost, fmt.Sprintf("/posts/%d/likes", p1.PostID), "u2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := fmt.Sprintf(`{"postids":[%d,%d]}`, p1.PostID, p2.PostID)
	rec = s.do(t, http.MethodPost, "/posts/counts", "u1", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Likes []struct {
				PostID uint  `json:"postid"`
				Count  int64 `json:"count"`
			} `json:"likes"`
			Retweets      []json.RawMessage `json:"retweets"`
			CommentCounts []json.RawMessage `json:"comment_counts"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data.Likes, 1)
	assert.Equal(t, p1.PostID, resp.Data.Likes[0].PostID)
	assert.Equal(t, int64(1), resp.Data.Likes[0].Count)
	assert.Empty(t, resp.Data.Retweets)
	assert.Empty(t, resp.Data.CommentCounts)
}

func TestCreatePostEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.seedUser(t, "u1", "alice")

	rec := s.do(t, http.MethodPost, "/posts", "u1", `{"textcontent":"hello world"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	long := strings.Repeat("a", 501)
	rec = s.do(t, http.MethodPost, "/posts", "u1", fmt.Sprintf(`{"textcontent":%q}`, long))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/posts", "u1", `{"textcontent":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, "/posts/999", "u1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFeedEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.seedUser(t, "u1", "alice")
	s.seedPost(t, "u1", "hello")

	rec := s.do(t, http.MethodGet, "/feed", "u1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Posts []json.RawMessage `json:"posts"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data.Posts, 1)

	rec = s.do(t, http.MethodGet, "/feed", "ghost", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/users", "u1", `{"userid":"u1","username":"alice","picture":"https://example.com/a.png"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"created":true`)

	rec = s.do(t, http.MethodPost, "/users", "u1", `{"userid":"u1","username":"alice","picture":"https://example.com/a.png"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"created":false`)

	rec = s.do(t, http.MethodPost, "/users", "u2", `{"userid":"u2","username":"alice","picture":"https://example.com/b.png"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodGet, "/users/alice", "u1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/users/nobody", "u1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodPatch, "/users/me", "u1", `{"bio":"new bio"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPatch, "/users/me", "u1", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
