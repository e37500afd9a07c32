package httpserver

import (
	"bufio"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/lordpeara/wind"
)

// ReadRequest parses one request's request line and header block into a
// structured request. Bodies are not consumed; the single-shot
// request/response cycle closes the connection regardless.
func ReadRequest(br *bufio.Reader) (*wind.Request, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		return nil, errors.Wrap(err, "read request line")
	}

	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) != 3 {
		return nil, errors.Newf("malformed request line %q", strings.TrimSpace(line))
	}

	method, err := wind.ParseMethod(fields[0])
	if err != nil {
		return nil, err
	}

	target := fields[1]
	path := target
	if i := strings.IndexByte(target, '?'); i >= 0 {
		path = target[:i]
	}

	headers := wind.RequestHeaders{}
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			return nil, errors.Wrap(err, "read header line")
		}

		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, errors.Newf("malformed header line %q", line)
		}
		headers.Set(key, strings.TrimSpace(value))
	}

	return &wind.Request{
		Method:  method,
		Path:    path,
		URL:     target,
		Headers: headers,
		Version: fields[2],
	}, nil
}
