package wind

import "github.com/cockroachdb/errors"

// Dispatcher is the route table: an insertion-ordered sequence of paths
// with first-exact-match lookup. Overlapping routes are a user error and
// not validated; the first registration wins. Read-only after
// construction, so safe to share across requests.
type Dispatcher struct {
	paths []*Path
}

// NewDispatcher builds the table from an ordered sequence of paths. A nil
// entry fails with a configuration error.
func NewDispatcher(paths []*Path) (*Dispatcher, error) {
	for i, p := range paths {
		if p == nil {
			return nil, errors.Wrapf(ErrConfiguration, "dispatcher wants paths, got nil at index %d", i)
		}
	}

	return &Dispatcher{paths: paths}, nil
}

// Lookup scans for the first path whose route equals url, or nil.
func (d *Dispatcher) Lookup(url string) *Path {
	for _, p := range d.paths {
		if p.route == url {
			return p
		}
	}

	return nil
}
