package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/jdelgad07/twitterclone/backend/internal/models"
	"github.com/jdelgad07/twitterclone/backend/internal/repositories"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fixture wires the services over an in-memory sqlite database so the
// unique indexes and transactions behave like the real store.
type fixture struct {
	db            *gorm.DB
	users         repositories.UserRepository
	follows       repositories.FollowRepository
	blocks        repositories.BlockRepository
	postRepo      repositories.PostRepository
	likeRepo      repositories.LikeRepository
	retweetRepo   repositories.RetweetRepository
	relationships *RelationshipService
	engagement    *EngagementService
	posts         *PostService
	timeline      *TimelineService
	accounts      *UserService
}

func newFixture(t *testing.T) *fixture {
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
	postRepo := repositories.NewPostgresPostRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	retweetRepo := repositories.NewPostgresRetweetRepository(db)

	return &fixture{
		db:            db,
		users:         users,
		follows:       follows,
		blocks:        blocks,
		postRepo:      postRepo,
		likeRepo:      likeRepo,
		retweetRepo:   retweetRepo,
		relationships: NewRelationshipService(users, follows, blocks),
		engagement:    NewEngagementService(users, postRepo, likeRepo, retweetRepo, blocks),
		posts:         NewPostService(users, postRepo),
		timeline:      NewTimelineService(users, postRepo, likeRepo, retweetRepo, blocks),
		accounts:      NewUserService(users, follows, blocks),
	}
}

func (f *fixture) seedUser(t *testing.T, id, username string) *models.User {
	t.Helper()
	user := &models.User{UserID: id, Username: username, Picture: "https://example.com/" + username + ".png"}
	require.NoError(t, f.users.CreateUser(user))
	return user
}

func (f *fixture) seedPost(t *testing.T, authorID, text string, at time.Time, parent *uint) *models.Post {
	t.Helper()
	post := &models.Post{UserID: authorID, TextContent: text, ParentPostID: parent, DatePosted: at}
	require.NoError(t, f.postRepo.CreatePost(post))
	return post
}
