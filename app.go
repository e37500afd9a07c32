package wind

import (
	"log"

	"github.com/cockroachdb/errors"
)

// App is the top-level entry point: one instance serves every inbound
// (connection, request) pair by consulting the route table and following
// the matched path, or a synthetic not-found path when nothing matches.
type App struct {
	dispatcher *Dispatcher
	errorPath  *Path
	logs       Logger
}

// NewApp creates an app from an ordered list of paths with default logging.
func NewApp(paths []*Path) (*App, error) {
	return NewAppWith(paths, NewStdLogger(log.Default()))
}

// NewAppWith creates an app with an injected logging capability.
func NewAppWith(paths []*Path, logs Logger) (*App, error) {
	if logs == nil {
		return nil, errors.Wrap(ErrConfiguration, "app wants a non-nil logger")
	}

	dispatcher, err := NewDispatcher(paths)
	if err != nil {
		return nil, err
	}

	return &App{
		dispatcher: dispatcher,
		errorPath: newErrorPath(func(*Request) (any, error) {
			return nil, Errorf(CodeNotFound, "no route matched")
		}),
		logs: logs,
	}, nil
}

// React dispatches one request: route lookup, fallback to the error path,
// then follow with a fresh responder. The responder owns the connection
// from here on and closes it from the transport completion callback.
func (a *App) React(conn Connection, req *Request) error {
	if conn == nil || req == nil {
		return errors.Wrap(ErrConfiguration, "can only react to a connection and a structured request")
	}

	path := a.dispatcher.Lookup(req.Path)
	if path == nil {
		path = a.errorPath
	}

	path.Follow(conn, req, a.logs)

	return nil
}
