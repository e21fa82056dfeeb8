package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/textproto"
	"strconv"
	"strings"
)

// headerContentLength is the framing header carrying the payload size.
const headerContentLength = "Content-Length"

// ReadFrame reads one Content-Length framed message (MCP/LSP style) from
// br: MIME headers, a blank line, then exactly Content-Length payload bytes.
// A clean end of input returns io.EOF; so does an unexpected EOF mid-header
// or mid-payload, since that is how a disconnecting writer presents.
func ReadFrame(br *bufio.Reader) ([]byte, error) {
	tp := textproto.NewReader(br)

	header, err := tp.ReadMIMEHeader()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) || strings.Contains(err.Error(), "unexpected EOF") {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read frame header: %w", err)
	}

	value := header.Get(headerContentLength)
	if value == "" {
		return nil, fmt.Errorf("missing %s header", headerContentLength)
	}
	length, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", headerContentLength, value, err)
	}
	if length <= 0 {
		return nil, fmt.Errorf("non-positive %s: %d", headerContentLength, length)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(br, payload); err != nil {
		if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read frame payload: %w", err)
	}
	return payload, nil
}
