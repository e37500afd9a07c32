package wind

import "strconv"

// HeaderSet is a mutable response header collection. Insertion order is
// preserved in serialization; adding an existing key updates its value in
// place.
type HeaderSet struct {
	keys   []string
	values map[string]string
}

// NewHeaderSet inits an empty header set.
func NewHeaderSet() *HeaderSet {
	return &HeaderSet{values: make(map[string]string)}
}

// Add sets the header to the given value, appending the key on first use.
func (h *HeaderSet) Add(key, value string) {
	if _, ok := h.values[key]; !ok {
		h.keys = append(h.keys, key)
	}
	h.values[key] = value
}

// Remove deletes the header if present.
func (h *HeaderSet) Remove(key string) {
	if _, ok := h.values[key]; !ok {
		return
	}

	delete(h.values, key)
	for i, k := range h.keys {
		if k == key {
			h.keys = append(h.keys[:i], h.keys[i+1:]...)
			break
		}
	}
}

// Get returns the header value, or the empty string.
func (h *HeaderSet) Get(key string) string { return h.values[key] }

// Len returns the number of headers.
func (h *HeaderSet) Len() int { return len(h.keys) }

// Clear resets the set for reuse by a subsequent response.
func (h *HeaderSet) Clear() {
	h.keys = nil
	h.values = make(map[string]string)
}

// Each visits headers in insertion order.
func (h *HeaderSet) Each(fn func(key, value string)) {
	for _, k := range h.keys {
		fn(k, h.values[k])
	}
}

// SetContentLength derives the Content-Length header from a byte count.
func (h *HeaderSet) SetContentLength(n int) {
	h.Add("Content-Length", strconv.Itoa(n))
}

// SetJSONContentType marks the response body as JSON.
func (h *HeaderSet) SetJSONContentType() {
	h.Add("Content-Type", "application/json")
}

// SetETag attaches the content validator for conditional caching.
func (h *HeaderSet) SetETag(etag string) {
	h.Add("ETag", etag)
}
