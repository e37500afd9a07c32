package wind

import (
	"bytes"
	"strconv"
)

const crlf = "\r\n"

// Response is the serialized form of the status line and header block. It
// is derived from the responder's current state at generation time, not
// stored across requests; regenerate it after changing headers.
type Response struct {
	version string
	status  Code
	headers *HeaderSet
}

func newResponse(req *Request, headers *HeaderSet, status Code) *Response {
	version := "HTTP/1.1"
	if req != nil && req.Version != "" {
		version = req.Version
	}

	return &Response{version: version, status: status, headers: headers}
}

// StatusCode returns the response status.
func (r *Response) StatusCode() Code { return r.status }

// Raw serializes the status line and the header block, terminated by the
// empty line that separates headers from the body.
func (r *Response) Raw() []byte {
	var b bytes.Buffer
	b.WriteString(r.version)
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(int(r.status)))
	b.WriteByte(' ')
	b.WriteString(r.status.Reason())
	b.WriteString(crlf)

	r.headers.Each(func(key, value string) {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString(crlf)
	})
	b.WriteString(crlf)

	return b.Bytes()
}
