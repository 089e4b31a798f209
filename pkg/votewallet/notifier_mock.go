package votewallet

import (
	"github.com/stretchr/testify/mock"
)

type Mock_Notifier struct {
	mock.Mock
}

func (m *Mock_Notifier) Publish(event Event) {
	m.Called(event)
}

func (m *Mock_Notifier) Subscribe(handler func(Event)) func() {
	ret := m.Called(handler)

	var r0 func()
	if rf, ok := ret.Get(0).(func(handler func(Event)) func()); ok {
		r0 = rf(handler)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(func())
		}
	}

	return r0
}
