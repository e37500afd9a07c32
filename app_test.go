package wind_test

import (
	"testing"

	"github.com/lordpeara/wind"
	"github.com/stretchr/testify/require"
)

func TestAppConfigurationErrors(t *testing.T) {
	paths := helloPaths()

	_, err := wind.NewAppWith(paths, nil)
	require.ErrorIs(t, err, wind.ErrConfiguration)

	_, err = wind.NewAppWith([]*wind.Path{nil}, wind.NewTestLogger(t))
	require.ErrorIs(t, err, wind.ErrConfiguration)

	app, err := wind.NewAppWith(paths, wind.NewTestLogger(t))
	require.NoError(t, err)

	require.ErrorIs(t, app.React(nil, newRequest(wind.MethodGet, "/")), wind.ErrConfiguration)
	require.ErrorIs(t, app.React(&fakeConn{}, nil), wind.ErrConfiguration)
}

// recordingLogger captures access lines for format assertions.
type recordingLogger struct {
	method string
	url    string
	status wind.Code
}

func (l *recordingLogger) LogAccess(method, url string, status wind.Code) {
	l.method, l.url, l.status = method, url, status
}

func (*recordingLogger) LogInternalError(error)      {}
func (*recordingLogger) LogUnhandledCondition(error) {}

func TestAccessLogLine(t *testing.T) {
	logs := &recordingLogger{}
	app, err := wind.NewAppWith(helloPaths(), logs)
	require.NoError(t, err)

	require.NoError(t, app.React(&fakeConn{}, newRequest(wind.MethodGet, "/")))

	require.Equal(t, "GET", logs.method, "method is upper-cased in the access line")
	require.Equal(t, "/", logs.url)
	require.Equal(t, wind.CodeOK, logs.status)
}

type headerResource struct{ wind.BaseResource }

func (headerResource) HandleGet(t *wind.Responder) error {
	t.AddResponseHeader("X-Powered-By", "wind")
	t.AddResponseHeader("X-Debug", "1")
	t.RemoveResponseHeader("X-Debug")
	t.Write("ok")
	return t.Finish()
}

func TestResponseHeaderProxy(t *testing.T) {
	paths := []*wind.Path{
		wind.MustPath(func() wind.Resource { return &headerResource{} }, "/", "get"),
	}
	conn, _ := serve(t, paths, newRequest(wind.MethodGet, "/"))

	_, headers, _ := conn.response(t)
	require.Equal(t, "wind", headers["X-Powered-By"])
	require.NotContains(t, headers, "X-Debug")
}
