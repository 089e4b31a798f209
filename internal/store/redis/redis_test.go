package redis_test

import (
	"testing"

	"github.com/alicebob/miniredis"
	"github.com/go-redis/redis"
	"github.com/stretchr/testify/suite"

	redisStore "github.com/culturefest/vote-wallet/internal/store/redis"
	"github.com/culturefest/vote-wallet/pkg/votewallet"
)

type RedisStoreTestSuite struct {
	suite.Suite

	db    *miniredis.Miniredis
	store votewallet.Store
}

func TestRedisStoreTestSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreTestSuite))
}

func (s *RedisStoreTestSuite) TestBalanceShouldDefaultToZeroIfUnset() {
	balance, err := s.store.Balance()
	s.Nil(err)
	s.Zero(balance)
}

func (s *RedisStoreTestSuite) TestSetBalanceShouldEmployValueOnDatabase() {
	s.Nil(s.store.SetBalance(12))
	s.db.CheckGet(s.T(), "userVoteBalance", "12")
}

func (s *RedisStoreTestSuite) TestBalanceShouldReturnPersistedValue() {
	s.Nil(s.db.Set("userVoteBalance", "7"))

	balance, err := s.store.Balance()
	s.Nil(err)
	s.Equal(7, balance)
}

func (s *RedisStoreTestSuite) TestBalanceShouldResetCorruptValueToZero() {
	s.Nil(s.db.Set("userVoteBalance", "not-a-number"))

	balance, err := s.store.Balance()
	s.Nil(err)
	s.Zero(balance)
	s.False(s.db.Exists("userVoteBalance"))
}

func (s *RedisStoreTestSuite) TestBalanceOnClosedStoreShouldReturnErrClosed() {
	s.Nil(s.store.Close())

	_, err := s.store.Balance()
	s.Equal(votewallet.ErrClosed, err)
}

func (s *RedisStoreTestSuite) TestTalliesShouldDefaultToEmptyMapIfUnset() {
	tallies, err := s.store.Tallies()
	s.Nil(err)
	s.NotNil(tallies)
	s.Empty(tallies)
}

func (s *RedisStoreTestSuite) TestSetTalliesShouldRoundTripAsJSON() {
	s.Nil(s.store.SetTallies(map[string]int{"c1": 3, "c2": 1}))

	tallies, err := s.store.Tallies()
	s.Nil(err)
	s.Equal(map[string]int{"c1": 3, "c2": 1}, tallies)
}

func (s *RedisStoreTestSuite) TestTalliesShouldResetCorruptValueToEmptyMap() {
	s.Nil(s.db.Set("contestantVotes", "{broken"))

	tallies, err := s.store.Tallies()
	s.Nil(err)
	s.Empty(tallies)
	s.False(s.db.Exists("contestantVotes"))
}

func (s *RedisStoreTestSuite) TestUserVotesShouldDefaultToZeroIfUnset() {
	votes, err := s.store.UserVotes("c1")
	s.Nil(err)
	s.Zero(votes)
}

func (s *RedisStoreTestSuite) TestSetUserVotesShouldEmployPerContestantKey() {
	s.Nil(s.store.SetUserVotes("c1", 4))
	s.db.CheckGet(s.T(), "userVotes_c1", "4")
}

func (s *RedisStoreTestSuite) TestUserVotesShouldResetCorruptValueToZero() {
	s.Nil(s.db.Set("userVotes_c1", "NaN"))

	votes, err := s.store.UserVotes("c1")
	s.Nil(err)
	s.Zero(votes)
}

func (s *RedisStoreTestSuite) TestAuthTokenShouldDefaultToEmptyIfUnset() {
	token, err := s.store.AuthToken()
	s.Nil(err)
	s.Empty(token)
}

func (s *RedisStoreTestSuite) TestSetAuthTokenShouldRoundTrip() {
	s.Nil(s.store.SetAuthToken("bearer-token"))

	token, err := s.store.AuthToken()
	s.Nil(err)
	s.Equal("bearer-token", token)
}

func (s *RedisStoreTestSuite) SetupTest() {
	var err error

	s.db, err = miniredis.Run()
	if err != nil {
		s.FailNow("failed to create miniredis db")
	}

	client := redis.NewClient(&redis.Options{Addr: s.db.Addr()})

	s.store = redisStore.New(client)
}

func (s *RedisStoreTestSuite) TearDownTest() {
	if err := s.store.Close(); err != nil {
		s.FailNow("failed to close store")
	}

	s.db.Close()
}
