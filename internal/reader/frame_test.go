package reader

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadFrame_SequentialMessages(t *testing.T) {
	input := "Content-Length: 5\r\n\r\nhello" +
		"Content-Length: 2\r\n\r\nok"
	br := bufio.NewReader(strings.NewReader(input))

	first, err := ReadFrame(br)
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), first)

	second, err := ReadFrame(br)
	require.NoError(t, err)
	require.Equal(t, []byte("ok"), second)

	_, err = ReadFrame(br)
	require.Equal(t, io.EOF, err)
}

func TestReadFrame_ExtraHeadersIgnored(t *testing.T) {
	input := "Content-Type: application/json\r\nContent-Length: 2\r\n\r\n{}"
	br := bufio.NewReader(strings.NewReader(input))

	payload, err := ReadFrame(br)
	require.NoError(t, err)
	require.Equal(t, []byte("{}"), payload)
}

func TestReadFrame_EmptyInput(t *testing.T) {
	br := bufio.NewReader(strings.NewReader(""))
	_, err := ReadFrame(br)
	require.Equal(t, io.EOF, err)
}

func TestReadFrame_MissingContentLength(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("Content-Type: text/plain\r\n\r\n"))
	_, err := ReadFrame(br)
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing Content-Length")
}

func TestReadFrame_InvalidContentLength(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("Content-Length: many\r\n\r\n"))
	_, err := ReadFrame(br)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid Content-Length")
}

func TestReadFrame_NonPositiveContentLength(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("Content-Length: 0\r\n\r\n"))
	_, err := ReadFrame(br)
	require.Error(t, err)
	require.Contains(t, err.Error(), "non-positive Content-Length")
}

func TestReadFrame_TruncatedPayloadIsEOF(t *testing.T) {
	// A writer that disconnects mid-payload presents as a clean EOF.
	br := bufio.NewReader(strings.NewReader("Content-Length: 10\r\n\r\nshort"))
	_, err := ReadFrame(br)
	require.Equal(t, io.EOF, err)
}
