package votewallet

import (
	"github.com/stretchr/testify/mock"
)

type Mock_Store struct {
	mock.Mock
}

func (m *Mock_Store) Close() error {
	ret := m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (m *Mock_Store) Balance() (int, error) {
	ret := m.Called()

	var r0 int
	if rf, ok := ret.Get(0).(func() int); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(int)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (m *Mock_Store) SetBalance(balance int) error {
	ret := m.Called(balance)

	var r0 error
	if rf, ok := ret.Get(0).(func(balance int) error); ok {
		r0 = rf(balance)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (m *Mock_Store) Tallies() (map[string]int, error) {
	ret := m.Called()

	var r0 map[string]int
	if rf, ok := ret.Get(0).(func() map[string]int); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(map[string]int)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (m *Mock_Store) SetTallies(tallies map[string]int) error {
	ret := m.Called(tallies)

	var r0 error
	if rf, ok := ret.Get(0).(func(tallies map[string]int) error); ok {
		r0 = rf(tallies)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (m *Mock_Store) UserVotes(contestantID string) (int, error) {
	ret := m.Called(contestantID)

	var r0 int
	if rf, ok := ret.Get(0).(func(contestantID string) int); ok {
		r0 = rf(contestantID)
	} else {
		r0 = ret.Get(0).(int)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(contestantID string) error); ok {
		r1 = rf(contestantID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (m *Mock_Store) SetUserVotes(contestantID string, votes int) error {
	ret := m.Called(contestantID, votes)

	var r0 error
	if rf, ok := ret.Get(0).(func(contestantID string, votes int) error); ok {
		r0 = rf(contestantID, votes)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (m *Mock_Store) AuthToken() (string, error) {
	ret := m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (m *Mock_Store) SetAuthToken(token string) error {
	ret := m.Called(token)

	var r0 error
	if rf, ok := ret.Get(0).(func(token string) error); ok {
		r0 = rf(token)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
