package auth_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/adrianliechti/carousel/pkg/auth"
	"github.com/adrianliechti/carousel/pkg/auth/header"
	"github.com/adrianliechti/carousel/pkg/auth/static"

	"github.com/stretchr/testify/require"
)

func TestStatic(t *testing.T) {
	p, err := static.New("secret")
	require.NoError(t, err)

	r := httptest.NewRequest("POST", "/generate", nil)

	_, err = p.Authenticate(context.Background(), r)
	require.ErrorContains(t, err, "missing authorization header")

	r.Header.Set("Authorization", "Basic secret")

	_, err = p.Authenticate(context.Background(), r)
	require.ErrorContains(t, err, "invalid authorization header")

	r.Header.Set("Authorization", "Bearer SECRET")

	_, err = p.Authenticate(context.Background(), r)
	require.ErrorContains(t, err, "invalid token")

	r.Header.Set("Authorization", "Bearer secret")

	ctx, err := p.Authenticate(context.Background(), r)
	require.NoError(t, err)
	require.Equal(t, "secret", ctx.Value(auth.UserContextKey))
}

func TestStaticEmptyToken(t *testing.T) {
	p, err := static.New("")
	require.NoError(t, err)

	_, err = p.Authenticate(context.Background(), httptest.NewRequest("POST", "/generate", nil))
	require.NoError(t, err)
}

func TestHeader(t *testing.T) {
	p, err := header.New()
	require.NoError(t, err)

	r := httptest.NewRequest("POST", "/generate", nil)

	_, err = p.Authenticate(context.Background(), r)
	require.Error(t, err)

	r.Header.Set("X-Forwarded-User", "jane@example.com")

	ctx, err := p.Authenticate(context.Background(), r)
	require.NoError(t, err)
	require.Equal(t, "jane@example.com", ctx.Value(auth.UserContextKey))
	require.Equal(t, "jane@example.com", ctx.Value(auth.EmailContextKey))
}
