package wind_test

import (
	"testing"

	"github.com/lordpeara/wind"
	"github.com/stretchr/testify/require"
)

func noopFunc(*wind.Request) (any, error) { return nil, nil }

func TestDispatcherLookup(t *testing.T) {
	root := wind.MustPathFunc(noopFunc, "/", "get")
	users := wind.MustPathFunc(noopFunc, "/users", "get", "post")
	shadowed := wind.MustPathFunc(noopFunc, "/users", "delete")

	d, err := wind.NewDispatcher([]*wind.Path{root, users, shadowed})
	require.NoError(t, err)

	require.Same(t, root, d.Lookup("/"))
	require.Same(t, users, d.Lookup("/users"), "first registration wins")
	require.Nil(t, d.Lookup("/users/"), "exact match only")
	require.Nil(t, d.Lookup("/missing"))
}

func TestDispatcherRejectsNilPath(t *testing.T) {
	_, err := wind.NewDispatcher([]*wind.Path{wind.MustPathFunc(noopFunc, "/", "get"), nil})
	require.ErrorIs(t, err, wind.ErrConfiguration)
}

func TestPathMethodValidation(t *testing.T) {
	p, err := wind.NewPathFunc(noopFunc, "/", "GET", "Post")
	require.NoError(t, err, "method names are case-normalized")
	require.True(t, p.Allowed(wind.MethodGet))
	require.True(t, p.Allowed(wind.MethodPost))
	require.False(t, p.Allowed(wind.MethodDelete))

	_, err = wind.NewPathFunc(noopFunc, "/", "options")
	require.ErrorIs(t, err, wind.ErrConfiguration)

	_, err = wind.NewPathFunc(nil, "/", "get")
	require.ErrorIs(t, err, wind.ErrConfiguration)

	_, err = wind.NewPath(nil, "/", "get")
	require.ErrorIs(t, err, wind.ErrConfiguration)

	require.Panics(t, func() { wind.MustPathFunc(noopFunc, "/", "patch") })
}

func TestRequestVersionGate(t *testing.T) {
	tests := []struct {
		version string
		above   bool
	}{
		{"HTTP/1.1", true},
		{"HTTP/2.0", true},
		{"HTTP/1.0", false},
		{"HTTP/0.9", false},
		{"bogus", false},
	}

	for _, tt := range tests {
		r := &wind.Request{Version: tt.version}
		require.Equal(t, tt.above, r.VersionAbove10(), tt.version)
	}
}
