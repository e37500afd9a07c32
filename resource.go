package wind

import "github.com/cockroachdb/errors"

// Resource is implemented by request handler types. One method slot exists
// per supported HTTP method; embed [BaseResource] to refuse the ones you do
// not implement. A fresh value is constructed per request via the path's
// constructor, so fields hold per-request state safely.
//
// Handlers call back into the responder to buffer output and, because
// responders default to asynchronous completion, to finish:
//
//	type hello struct{ wind.BaseResource }
//
//	func (hello) HandleGet(t *wind.Responder) error {
//		t.Write("hello wind!")
//		return t.Finish()
//	}
type Resource interface {
	HandleGet(t *Responder) error
	HandlePost(t *Responder) error
	HandlePut(t *Responder) error
	HandleDelete(t *Responder) error
	HandleHead(t *Responder) error
}

// Initializer is a construction hook run once before the responder reacts,
// for per-request setup such as switching to auto-finish.
type Initializer interface {
	Initialize(t *Responder)
}

// ErrorMessenger overrides the body of error responses. The default body is
// the numeric status code.
type ErrorMessenger interface {
	ErrorMessage(code Code) string
}

// ETagPolicy overrides conditional-caching eligibility. The default allows
// ETags for any request declaring an HTTP version above 1.0; implement this
// to disable them for a resource regardless of version.
type ETagPolicy interface {
	ETagAvailable(r *Request) bool
}

// BaseResource provides default method slots that all refuse with
// MethodNotAllowed. Embed it and override the methods you serve.
type BaseResource struct{}

func (BaseResource) HandleGet(*Responder) error    { return errNotAllowed() }
func (BaseResource) HandlePost(*Responder) error   { return errNotAllowed() }
func (BaseResource) HandlePut(*Responder) error    { return errNotAllowed() }
func (BaseResource) HandleDelete(*Responder) error { return errNotAllowed() }
func (BaseResource) HandleHead(*Responder) error   { return errNotAllowed() }

func errNotAllowed() error {
	return NewError(CodeMethodNotAllowed, errors.New("method not allowed"))
}

// dispatch routes the request to the method-named slot. The switch is the
// fixed dispatch table; methods outside it never pass request parsing.
func dispatch(rsc Resource, m Method, t *Responder) error {
	switch m {
	case MethodGet:
		return rsc.HandleGet(t)
	case MethodPost:
		return rsc.HandlePost(t)
	case MethodPut:
		return rsc.HandlePut(t)
	case MethodDelete:
		return rsc.HandleDelete(t)
	case MethodHead:
		return rsc.HandleHead(t)
	default:
		return errNotAllowed()
	}
}
