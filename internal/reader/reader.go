// Package reader implements the input strategies for stdinlog: bulk
// read-to-EOF, line streaming, and Content-Length framed messages.
package reader

import (
	"bufio"
	"io"
	"iter"
	"strings"
	"unicode/utf8"
)

// Payload is the result of a bulk read: the raw byte count and the decoded
// text.
type Payload struct {
	ByteCount int
	Text      string
}

// Decode interprets data as UTF-8, replacing each run of invalid bytes with
// U+FFFD. Decoding never fails.
func Decode(data []byte) string {
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}

// ReadAll reads r to EOF, with no size limit, and decodes the bytes. The
// only error source is the underlying read.
func ReadAll(r io.Reader) (Payload, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Payload{}, err
	}
	return Payload{ByteCount: len(data), Text: Decode(data)}, nil
}

// Lines returns an iterator over the lines of r, in input order, with
// trailing line terminators stripped. A final unterminated line is still
// yielded, and there is no line-length cap. Iteration ends at EOF; any other
// read error is yielded once, after the data received before it, and ends
// the sequence. There is no timeout: a reader that never closes blocks the
// iterator indefinitely.
func Lines(r io.Reader) iter.Seq2[string, error] {
	br := bufio.NewReader(r)
	return func(yield func(string, error) bool) {
		for {
			line, err := br.ReadString('\n')
			if len(line) > 0 {
				if !yield(strings.TrimRight(line, "\r\n"), nil) {
					return
				}
			}
			if err != nil {
				if err != io.EOF {
					yield("", err)
				}
				return
			}
		}
	}
}
