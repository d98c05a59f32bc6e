package guard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-service/pkg/auth"
	"github.com/tair/inventory-service/pkg/response"
)

func staticSession(s *Session, err error) SessionProvider {
	return SessionProviderFunc(func(context.Context) (*Session, error) { return s, err })
}

func TestRun_RejectsWithoutSession(t *testing.T) {
	providers := map[string]SessionProvider{
		"no session":     staticSession(nil, nil),
		"provider error": staticSession(nil, errors.New("token expired")),
	}

	for name, p := range providers {
		t.Run(name, func(t *testing.T) {
			called := false
			res := Run(context.Background(), New(p), func(ctx context.Context, s *Session) response.Result[string] {
				called = true
				v := "ran"
				return response.OK(&v, "Success!")
			})

			assert.False(t, called)
			assert.False(t, res.Success)
			assert.Equal(t, "Unauthorized", res.MessageText())
			assert.Nil(t, res.Data)
			assert.Equal(t, response.KindUnauthorized, res.Kind)
		})
	}
}

func TestRun_PassesResultThrough(t *testing.T) {
	session := &Session{UserID: 3, Username: "carol"}
	g := New(staticSession(session, nil))

	res := Run(context.Background(), g, func(ctx context.Context, s *Session) response.Result[string] {
		require.Same(t, session, s)
		return response.Fail[string](response.KindPersistence, "db down")
	})

	assert.False(t, res.Success)
	assert.Equal(t, "db down", res.MessageText())
	assert.Equal(t, response.KindPersistence, res.Kind)
}

func TestRun_Public(t *testing.T) {
	g := New(staticSession(nil, nil))

	res := Run(context.Background(), g, func(ctx context.Context, s *Session) response.Result[int] {
		assert.Nil(t, s)
		n := 7
		return response.OK(&n, "Success!")
	}, Public())

	require.True(t, res.Success)
	assert.Equal(t, 7, *res.Data)
}

func TestTokenSessionProvider(t *testing.T) {
	m := auth.NewManager("test-secret-that-is-at-least-32-chars", "inventory-service", time.Hour)
	p := NewTokenSessionProvider(m)

	s, err := p.Session(context.Background())
	require.NoError(t, err)
	assert.Nil(t, s)

	_, err = p.Session(auth.WithToken(context.Background(), "bogus"))
	assert.Error(t, err)

	token, err := m.GenerateToken(9, "dave", "staff")
	require.NoError(t, err)

	s, err = p.Session(auth.WithToken(context.Background(), token))
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, uint(9), s.UserID)
	assert.Equal(t, "dave", s.Username)
	assert.WithinDuration(t, time.Now().Add(time.Hour), s.ExpiresAt, time.Minute)
}
