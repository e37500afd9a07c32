package wind

// Connection abstracts the wire-level transport of one request/response
// cycle. Write hands off the full payload without blocking the caller's
// semantics: onComplete is invoked exactly once after the bytes are fully
// handed off, and only then may per-request state be released. Between the
// Write call and the callback the payload's ownership belongs to the
// pending write.
type Connection interface {
	Write(p []byte, onComplete func())
	Close() error
}
