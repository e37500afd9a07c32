package wind

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Responder is the per-request state machine. It owns the buffered output,
// the response headers and the finish/error protocol, and hands the final
// payload to the transport in a single write. A responder serves exactly
// one request; the transport completion callback releases its state.
//
// Responders default to asynchronous completion: the resource itself calls
// [Responder.Finish] (possibly after suspending on further I/O). Switch to
// auto-finish with SetAsynchronous(false), typically from an [Initializer]
// hook. During any suspension the responder is the sole owner of its
// buffers and must not be reused for another request.
type Responder struct {
	path *Path
	logs Logger

	conn Connection
	req  *Request
	resp *Response

	status  Code
	buf     *ChunkBuffer
	headers *HeaderSet

	resource Resource
	fn       HandlerFunc

	async      bool
	processing bool
}

func newResponder(p *Path, logs Logger) *Responder {
	t := &Responder{
		path:    p,
		logs:    logs,
		buf:     NewChunkBuffer(),
		headers: NewHeaderSet(),
		async:   true,
	}

	if p.construct != nil {
		t.resource = p.construct()
	} else {
		t.fn = p.fn
	}

	if ini, ok := t.resource.(Initializer); ok {
		ini.Initialize(t)
	}

	return t
}

// SetAsynchronous declares whether the resource calls Finish itself (true,
// the default) or the responder finishes automatically after the handler
// method returns (false).
func (t *Responder) SetAsynchronous(async bool) { t.async = async }

// Processing reports whether a request cycle is in flight.
func (t *Responder) Processing() bool { return t.processing }

// Request returns the request being served, nil outside a cycle.
func (t *Responder) Request() *Request { return t.req }

// React runs one request cycle: method allowance, handler dispatch and, on
// any failure, the error-to-status mapping. It returns before the transport
// write is guaranteed complete; the completion callback clears state.
func (t *Responder) React(conn Connection, req *Request) {
	t.processing = true
	t.conn = conn
	t.req = req

	t.HandleError(t.serve())
}

func (t *Responder) serve() (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = errors.Newf("panic in handler: %v", v)
		}
	}()

	if !t.path.errorPath && !t.path.Allowed(t.req.Method) {
		return errNotAllowed()
	}

	if t.fn != nil {
		chunk, err := t.fn(t.req)
		if err != nil {
			return err
		}
		if err := t.Write(chunk); err != nil {
			return err
		}

		return t.Finish()
	}

	if err := dispatch(t.resource, t.req.Method, t); err != nil {
		return err
	}
	if !t.async {
		return t.Finish()
	}

	return nil
}

// HandleError converts a handler failure into a response. NotFound,
// MethodNotAllowed and NotModified map directly onto their status codes.
// Unexpected failures are logged with full detail and answered with 500.
// Other http conditions are logged and still answered, with their own code
// when it is a valid status, so no connection is left hanging.
//
// Exposed so asynchronous resources completing outside React can route
// their errors through the same mapping.
func (t *Responder) HandleError(err error) {
	if err == nil {
		return
	}

	switch code := CodeOf(err); code {
	case CodeNotFound, CodeMethodNotAllowed, CodeNotModified:
		t.SendResponse(code)
	case CodeUnknown:
		t.logs.LogInternalError(err)
		t.SendResponse(CodeInternalServerError)
	default:
		t.logs.LogUnhandledCondition(err)
		if code.Reason() == "Unknown" {
			code = CodeInternalServerError
		}
		t.SendResponse(code)
	}
}

// Write buffers a body chunk. Strings and byte slices are written as-is;
// any other value is serialized to JSON and the content type switched
// accordingly. Empty chunks are a no-op.
func (t *Responder) Write(chunk any) error {
	return t.write(chunk, false)
}

// WriteFront buffers a body chunk in front of everything written so far.
func (t *Responder) WriteFront(chunk any) error {
	return t.write(chunk, true)
}

func (t *Responder) write(chunk any, front bool) error {
	var p []byte
	switch v := chunk.(type) {
	case nil:
		return nil
	case string:
		p = []byte(v)
	case []byte:
		p = v
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "encode body chunk to json")
		}
		p = encoded
		t.headers.SetJSONContentType()
	}

	if len(p) == 0 {
		return nil
	}

	if front {
		t.buf.AppendLeft(p)
	} else {
		t.buf.Append(p)
	}

	return nil
}

// AddResponseHeader sets a response header. Callable any time before Finish
// or SendResponse.
func (t *Responder) AddResponseHeader(key, value string) {
	t.headers.Add(key, value)
}

// RemoveResponseHeader removes a response header.
func (t *Responder) RemoveResponseHeader(key string) {
	t.headers.Remove(key)
}

// SetStatusCode stores the code used at response-generation time.
func (t *Responder) SetStatusCode(code Code) { t.status = code }

// Finish completes the normal path: conditional-caching validation first,
// then content length, the OK status, and the single transport write. A
// matched If-None-Match aborts with a NotModified error for the caller's
// error mapping; resources finishing on their own pass it to HandleError.
func (t *Responder) Finish() error {
	if t.etagAvailable() {
		etag := t.computeETag()
		if t.req.Headers.IfNoneMatch() == etag {
			return Errorf(CodeNotModified, "etag %s matched If-None-Match", etag)
		}
		t.headers.SetETag(etag)
	}

	if !t.buf.Empty() {
		t.headers.SetContentLength(t.buf.Len())
	}

	t.SetStatusCode(CodeOK)
	t.generateResponse()
	t.transmit()

	return nil
}

// SendResponse completes the error/short-circuit path: any buffered body is
// discarded and replaced by the error message before the transport write.
// Statuses defined as bodiless (304, 204) send the header block alone.
func (t *Responder) SendResponse(code Code) {
	t.buf.Reset()
	t.SetStatusCode(code)
	if code != CodeNotModified && code != CodeNoContent {
		_ = t.Write(t.errorMessage(code))
	}
	t.generateResponse()
	t.transmit()
}

// transmit prepends the serialized header block, gathers the buffer into
// one contiguous payload and hands it to the transport. The completion
// callback performs the clear transition.
func (t *Responder) transmit() {
	t.buf.AppendLeft(t.resp.Raw())
	t.buf.Gather(t.buf.Len())
	t.conn.Write(t.buf.PopLeft(), t.clear)
}

func (t *Responder) errorMessage(code Code) string {
	if m, ok := t.resource.(ErrorMessenger); ok {
		return m.ErrorMessage(code)
	}

	return strconv.Itoa(int(code))
}

func (t *Responder) generateResponse() {
	t.resp = newResponse(t.req, t.headers, t.status)
}

// clear releases per-request state: close the connection, emit the access
// line, drop references, reset buffer and headers. It runs exactly once per
// request, from the transport completion callback, regardless of which path
// produced the write.
func (t *Responder) clear() {
	if err := t.conn.Close(); err != nil {
		t.logs.LogInternalError(errors.Wrap(err, "close connection"))
	}

	t.logAccess()
	t.processing = false
	t.conn, t.req = nil, nil
	t.buf.Reset()
	t.headers.Clear()
}

func (t *Responder) logAccess() {
	if t.req == nil || t.resp == nil {
		return
	}

	t.logs.LogAccess(strings.ToUpper(string(t.req.Method)), t.req.URL, t.resp.StatusCode())
}

// etagAvailable gates conditional caching on the request's HTTP version
// unless the resource carries its own policy.
func (t *Responder) etagAvailable() bool {
	if p, ok := t.resource.(ETagPolicy); ok {
		return p.ETagAvailable(t.req)
	}

	return t.req.VersionAbove10()
}

// computeETag digests the buffered body chunks in their current order. MD5
// keeps the tag at 32 hex characters while making accidental collisions
// negligible; chunk boundaries do not affect the digest.
func (t *Responder) computeETag() string {
	sum := md5.New()
	t.buf.each(func(p []byte) { sum.Write(p) })

	return hex.EncodeToString(sum.Sum(nil))
}
