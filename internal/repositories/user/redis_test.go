package user

import (
	"context"
	"testing"

	"github.com/KirkDiggler/lobbyboard/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestGetNonExistentUser() {
	_, err := s.repo.GetUser(s.ctx, &GetUserInput{UserID: "missing"})
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetOrCreateUser() {
	user, err := s.repo.GetOrCreateUser(s.ctx, &GetOrCreateUserInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal("user-1", user.ID)
	s.False(user.IsAdmin)
	s.Empty(user.Subscribers)

	// An existing record is returned unchanged
	s.Require().NoError(s.repo.RateUser(s.ctx, &RateUserInput{UserID: "user-1", RaterID: "user-2", Liked: true}))

	again, err := s.repo.GetOrCreateUser(s.ctx, &GetOrCreateUserInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Len(again.Rating, 1)
}

func (s *RedisRepositoryTestSuite) TestSetAdminAndListAdmins() {
	s.Require().NoError(s.repo.SetAdmin(s.ctx, &SetAdminInput{UserID: "200", IsAdmin: true}))
	s.Require().NoError(s.repo.SetAdmin(s.ctx, &SetAdminInput{UserID: "100", IsAdmin: true}))

	out, err := s.repo.ListAdmins(s.ctx, &ListAdminsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Users, 2)
	s.Equal("100", out.Users[0].ID)
	s.Equal("200", out.Users[1].ID)
	s.True(out.Users[0].IsAdmin)

	s.Require().NoError(s.repo.SetAdmin(s.ctx, &SetAdminInput{UserID: "200", IsAdmin: false}))

	out, err = s.repo.ListAdmins(s.ctx, &ListAdminsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Users, 1)
	s.Equal("100", out.Users[0].ID)

	revoked, err := s.repo.GetUser(s.ctx, &GetUserInput{UserID: "200"})
	s.Require().NoError(err)
	s.False(revoked.IsAdmin)
}

func (s *RedisRepositoryTestSuite) TestListAdminsEmpty() {
	out, err := s.repo.ListAdmins(s.ctx, &ListAdminsInput{})
	s.Require().NoError(err)
	s.Empty(out.Users)
}

func (s *RedisRepositoryTestSuite) TestSubscribers() {
	chat := models.Chat{ChatID: "chat-1"}

	added, err := s.repo.AddSubscriber(s.ctx, &AddSubscriberInput{UserID: "owner", Chat: chat})
	s.Require().NoError(err)
	s.True(added.Added)

	added, err = s.repo.AddSubscriber(s.ctx, &AddSubscriberInput{UserID: "owner", Chat: chat})
	s.Require().NoError(err)
	s.False(added.Added)

	user, err := s.repo.GetUser(s.ctx, &GetUserInput{UserID: "owner"})
	s.Require().NoError(err)
	s.Equal([]models.Chat{chat}, user.Subscribers)

	removed, err := s.repo.RemoveSubscriber(s.ctx, &RemoveSubscriberInput{UserID: "owner", Chat: chat})
	s.Require().NoError(err)
	s.True(removed.Removed)

	removed, err = s.repo.RemoveSubscriber(s.ctx, &RemoveSubscriberInput{UserID: "owner", Chat: chat})
	s.Require().NoError(err)
	s.False(removed.Removed)

	user, err = s.repo.GetUser(s.ctx, &GetUserInput{UserID: "owner"})
	s.Require().NoError(err)
	s.Empty(user.Subscribers)
}

func (s *RedisRepositoryTestSuite) TestRateUserLastWriteWins() {
	s.Require().NoError(s.repo.RateUser(s.ctx, &RateUserInput{UserID: "owner", RaterID: "a", Liked: true}))
	s.Require().NoError(s.repo.RateUser(s.ctx, &RateUserInput{UserID: "owner", RaterID: "b", Liked: true}))
	s.Require().NoError(s.repo.RateUser(s.ctx, &RateUserInput{UserID: "owner", RaterID: "a", Liked: false}))

	user, err := s.repo.GetUser(s.ctx, &GetUserInput{UserID: "owner"})
	s.Require().NoError(err)
	s.Len(user.Rating, 2)

	likes, dislikes := user.Score()
	s.Equal(1, likes)
	s.Equal(1, dislikes)
}
