package email

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFakeSender(t *testing.T) {
	f := &FakeSender{}
	require.Panics(t, func() { _ = f.Send("a@x.com", "s", "b", false) })

	var gotTo, gotSubject, gotBody string
	var gotHTML bool
	f.SendFn = func(to, subject, body string, html bool) error {
		gotTo, gotSubject, gotBody, gotHTML = to, subject, body, html
		return errors.New("send")
	}
	require.EqualError(t, f.Send("a@x.com", "s", "b", true), "send")
	require.Equal(t, "a@x.com", gotTo)
	require.Equal(t, "s", gotSubject)
	require.Equal(t, "b", gotBody)
	require.True(t, gotHTML)
}

func TestNewSMTPSender(t *testing.T) {
	s := NewSMTPSender("localhost", 587, "u", "p", "Hiking Planner <no-reply@hiking.test>")
	require.NotNil(t, s.dialer)
	require.Equal(t, "Hiking Planner <no-reply@hiking.test>", s.from)
}
