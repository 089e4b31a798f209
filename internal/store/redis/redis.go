package redis

import (
	"encoding/json"
	"strconv"

	"github.com/go-redis/redis"
	"github.com/sirupsen/logrus"

	"github.com/culturefest/vote-wallet/pkg/votewallet"
)

// Key names match the original browser-storage layout so a session can be
// inspected with plain redis tooling.
const (
	keyBalance   = "userVoteBalance"
	keyTallies   = "contestantVotes"
	keyAuthToken = "authToken"
)

type redisStore struct {
	client *redis.Client
}

func New(client *redis.Client) votewallet.Store {
	return &redisStore{
		client: client,
	}
}

func (r *redisStore) Balance() (int, error) {
	if r.client == nil {
		return 0, votewallet.ErrClosed
	}

	raw, err := r.client.Get(keyBalance).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	balance, err := strconv.Atoi(raw)
	if err != nil {
		return 0, r.resetCorruptKey(keyBalance, err)
	}

	return balance, nil
}

func (r *redisStore) SetBalance(balance int) error {
	if r.client == nil {
		return votewallet.ErrClosed
	}

	return r.client.Set(keyBalance, strconv.Itoa(balance), 0).Err()
}

func (r *redisStore) Tallies() (map[string]int, error) {
	if r.client == nil {
		return nil, votewallet.ErrClosed
	}

	raw, err := r.client.Get(keyTallies).Bytes()
	if err == redis.Nil {
		return make(map[string]int), nil
	}
	if err != nil {
		return nil, err
	}

	var tallies map[string]int
	if err := json.Unmarshal(raw, &tallies); err != nil {
		if err := r.resetCorruptKey(keyTallies, err); err != nil {
			return nil, err
		}

		return make(map[string]int), nil
	}

	if tallies == nil {
		tallies = make(map[string]int)
	}

	return tallies, nil
}

func (r *redisStore) SetTallies(tallies map[string]int) error {
	if r.client == nil {
		return votewallet.ErrClosed
	}

	encoded, err := json.Marshal(tallies)
	if err != nil {
		return err
	}

	return r.client.Set(keyTallies, encoded, 0).Err()
}

func (r *redisStore) UserVotes(contestantID string) (int, error) {
	if r.client == nil {
		return 0, votewallet.ErrClosed
	}

	key := userVotesKey(contestantID)
	raw, err := r.client.Get(key).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	votes, err := strconv.Atoi(raw)
	if err != nil {
		return 0, r.resetCorruptKey(key, err)
	}

	return votes, nil
}

func (r *redisStore) SetUserVotes(contestantID string, votes int) error {
	if r.client == nil {
		return votewallet.ErrClosed
	}

	return r.client.Set(userVotesKey(contestantID), strconv.Itoa(votes), 0).Err()
}

func (r *redisStore) AuthToken() (string, error) {
	if r.client == nil {
		return "", votewallet.ErrClosed
	}

	token, err := r.client.Get(keyAuthToken).Result()
	if err == redis.Nil {
		return "", nil
	}

	return token, err
}

func (r *redisStore) SetAuthToken(token string) error {
	if r.client == nil {
		return votewallet.ErrClosed
	}

	return r.client.Set(keyAuthToken, token, 0).Err()
}

func (r *redisStore) Close() error {
	if r.client != nil {
		err := r.client.Close()
		r.client = nil

		return err
	}

	return nil
}

// resetCorruptKey deletes an unparseable value so the next read sees the
// default instead of failing forever.
func (r *redisStore) resetCorruptKey(key string, cause error) error {
	logrus.WithError(cause).WithField("key", key).Error("resetting corrupt persisted value")
	return r.client.Del(key).Err()
}

func userVotesKey(contestantID string) string {
	return "userVotes_" + contestantID
}
