package wind

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Method is a lowercase HTTP method name out of the fixed supported set.
type Method string

const (
	MethodGet    Method = "get"
	MethodPost   Method = "post"
	MethodPut    Method = "put"
	MethodDelete Method = "delete"
	MethodHead   Method = "head"
)

var supportedMethods = map[Method]struct{}{
	MethodGet:    {},
	MethodPost:   {},
	MethodPut:    {},
	MethodDelete: {},
	MethodHead:   {},
}

// ParseMethod normalizes s to lowercase and validates it against the
// supported set.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(s))
	if _, ok := supportedMethods[m]; !ok {
		return "", errUnsupportedMethod(s)
	}

	return m, nil
}

func errUnsupportedMethod(s string) error {
	return errors.Wrapf(ErrConfiguration,
		"unsupported HTTP method %q, supported: %v", s, lo.Keys(supportedMethods))
}

// RequestHeaders is a case-insensitive view over the request's header
// lines. Keys are stored lowercase.
type RequestHeaders map[string]string

// Set stores the header under its lowercase key.
func (h RequestHeaders) Set(key, value string) {
	h[strings.ToLower(key)] = value
}

// Get looks the header up regardless of key casing.
func (h RequestHeaders) Get(key string) string {
	return h[strings.ToLower(key)]
}

// IfNoneMatch returns the conditional validator sent by the client, if any.
func (h RequestHeaders) IfNoneMatch() string {
	return h.Get("If-None-Match")
}

// Request is the structured HTTP request produced by the parsing layer. It
// is immutable for the duration of one handling cycle; the responder holds
// a reference only until the cycle completes.
type Request struct {
	Method  Method
	Path    string
	URL     string
	Headers RequestHeaders
	Version string
}

// VersionAbove10 reports whether the declared HTTP version is strictly
// greater than 1.0. ETags are unsupported under HTTP/1.0 (RFC 1945), so
// this gates conditional caching. Unparsable versions count as not above.
func (r *Request) VersionAbove10() bool {
	_, suffix, ok := strings.Cut(r.Version, "/")
	if !ok {
		return false
	}

	v, err := strconv.ParseFloat(suffix, 64)
	if err != nil {
		return false
	}

	return v > 1.0
}
