package wind

import "github.com/cockroachdb/errors"

// HandlerFunc lets a plain function serve a route without implementing
// [Resource]. The returned chunk is written as the response body; returning
// a *Error produces the matching status code instead.
type HandlerFunc func(r *Request) (any, error)

// Path binds a route string and its allowed methods to a handler: either a
// constructor for a [Resource] type, or a plain [HandlerFunc]. A path
// without a route is the error path used as fallback for unmatched
// requests; it carries no method-allowance list.
//
// Routes match by exact string equality; pattern matching is a known
// limitation of this core. Every request gets a fresh responder, for
// function handlers too.
type Path struct {
	route     string
	errorPath bool
	methods   map[Method]struct{}

	construct func() Resource
	fn        HandlerFunc
}

// NewPath binds a Resource constructor to a route. Method names are
// normalized to lowercase and validated; an unsupported name fails with a
// configuration error.
func NewPath(construct func() Resource, route string, methods ...string) (*Path, error) {
	if construct == nil {
		return nil, errors.Wrap(ErrConfiguration, "path needs a non-nil resource constructor")
	}

	p := &Path{route: route, errorPath: route == "", construct: construct}
	return p, p.parseMethods(methods)
}

// NewPathFunc binds a plain function to a route.
func NewPathFunc(fn HandlerFunc, route string, methods ...string) (*Path, error) {
	if fn == nil {
		return nil, errors.Wrap(ErrConfiguration, "path needs a non-nil handler func")
	}

	p := &Path{route: route, errorPath: route == "", fn: fn}
	return p, p.parseMethods(methods)
}

// MustPath is NewPath but panics on configuration errors.
func MustPath(construct func() Resource, route string, methods ...string) *Path {
	p, err := NewPath(construct, route, methods...)
	if err != nil {
		panic("wind: " + err.Error())
	}

	return p
}

// MustPathFunc is NewPathFunc but panics on configuration errors.
func MustPathFunc(fn HandlerFunc, route string, methods ...string) *Path {
	p, err := NewPathFunc(fn, route, methods...)
	if err != nil {
		panic("wind: " + err.Error())
	}

	return p
}

// newErrorPath builds the routeless fallback binding.
func newErrorPath(fn HandlerFunc) *Path {
	return &Path{errorPath: true, fn: fn}
}

func (p *Path) parseMethods(methods []string) error {
	if p.errorPath {
		return nil
	}

	p.methods = make(map[Method]struct{}, len(methods))
	for _, s := range methods {
		m, err := ParseMethod(s)
		if err != nil {
			return err
		}
		p.methods[m] = struct{}{}
	}

	return nil
}

// Route returns the exact-match route string, empty for the error path.
func (p *Path) Route() string { return p.route }

// ErrorPath reports whether this is the routeless fallback binding.
func (p *Path) ErrorPath() bool { return p.errorPath }

// Allowed tests method membership. Not meaningful for the error path, which
// skips allowance checks entirely.
func (p *Path) Allowed(m Method) bool {
	_, ok := p.methods[m]
	return ok
}

// Follow reacts to the request with a responder freshly bound to this path.
func (p *Path) Follow(conn Connection, req *Request, logs Logger) {
	newResponder(p, logs).React(conn, req)
}
