package storm

import (
	"github.com/asdine/storm"

	"github.com/culturefest/vote-wallet/pkg/votewallet"
)

const balanceRecordID = "userVoteBalance"
const tokenRecordID = "authToken"

type balanceRecord struct {
	ID    string `storm:"id"`
	Votes int
}

type tallyRecord struct {
	ContestantID string `storm:"id"`
	Votes        int
}

type personalRecord struct {
	ContestantID string `storm:"id"`
	Votes        int
}

type tokenRecord struct {
	ID    string `storm:"id"`
	Token string
}

type stormStore struct {
	db *storm.DB
}

// New opens (creating if needed) a bolt file at path and returns a Store
// backed by it. The file is the single-machine analog of the original
// browser storage.
func New(path string) (votewallet.Store, error) {
	db, err := storm.Open(path)
	if err != nil {
		return nil, err
	}

	return &stormStore{db: db}, nil
}

func (s *stormStore) Balance() (int, error) {
	if s.db == nil {
		return 0, votewallet.ErrClosed
	}

	var record balanceRecord
	err := s.db.One("ID", balanceRecordID, &record)
	if err == storm.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return record.Votes, nil
}

func (s *stormStore) SetBalance(balance int) error {
	if s.db == nil {
		return votewallet.ErrClosed
	}

	return s.db.Save(&balanceRecord{ID: balanceRecordID, Votes: balance})
}

func (s *stormStore) Tallies() (map[string]int, error) {
	if s.db == nil {
		return nil, votewallet.ErrClosed
	}

	var records []tallyRecord
	if err := s.db.All(&records); err != nil {
		return nil, err
	}

	result := make(map[string]int, len(records))
	for _, record := range records {
		result[record.ContestantID] = record.Votes
	}

	return result, nil
}

func (s *stormStore) SetTallies(tallies map[string]int) error {
	if s.db == nil {
		return votewallet.ErrClosed
	}

	var existing []tallyRecord
	if err := s.db.All(&existing); err != nil {
		return err
	}

	for _, record := range existing {
		if _, ok := tallies[record.ContestantID]; !ok {
			if err := s.db.DeleteStruct(&record); err != nil {
				return err
			}
		}
	}

	for contestantID, votes := range tallies {
		if err := s.db.Save(&tallyRecord{ContestantID: contestantID, Votes: votes}); err != nil {
			return err
		}
	}

	return nil
}

func (s *stormStore) UserVotes(contestantID string) (int, error) {
	if s.db == nil {
		return 0, votewallet.ErrClosed
	}

	var record personalRecord
	err := s.db.One("ContestantID", contestantID, &record)
	if err == storm.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return record.Votes, nil
}

func (s *stormStore) SetUserVotes(contestantID string, votes int) error {
	if s.db == nil {
		return votewallet.ErrClosed
	}

	return s.db.Save(&personalRecord{ContestantID: contestantID, Votes: votes})
}

func (s *stormStore) AuthToken() (string, error) {
	if s.db == nil {
		return "", votewallet.ErrClosed
	}

	var record tokenRecord
	err := s.db.One("ID", tokenRecordID, &record)
	if err == storm.ErrNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return record.Token, nil
}

func (s *stormStore) SetAuthToken(token string) error {
	if s.db == nil {
		return votewallet.ErrClosed
	}

	return s.db.Save(&tokenRecord{ID: tokenRecordID, Token: token})
}

func (s *stormStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil

		return err
	}

	return nil
}
