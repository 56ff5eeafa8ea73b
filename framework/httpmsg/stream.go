package httpmsg

import (
	"errors"
	"io"
)

// Stream is a seekable message body.
type Stream interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer

	// Size returns the total number of bytes in the stream.
	Size() int64
}

// ── In-memory stream ─────────────────────────────────────────────────────────

// bufferStream is the in-memory Stream used for bodies built from bytes.
type bufferStream struct {
	buf    []byte
	off    int64
	closed bool
}

// NewBufferStream returns an in-memory Stream positioned at the start of b.
// The stream takes ownership of b.
func NewBufferStream(b []byte) Stream {
	return &bufferStream{buf: b}
}

func (s *bufferStream) Read(p []byte) (int, error) {
	if s.closed {
		return 0, errors.New("httpmsg: read from closed stream")
	}
	if s.off >= int64(len(s.buf)) {
		return 0, io.EOF
	}
	n := copy(p, s.buf[s.off:])
	s.off += int64(n)
	return n, nil
}

func (s *bufferStream) Write(p []byte) (int, error) {
	if s.closed {
		return 0, errors.New("httpmsg: write to closed stream")
	}
	// Write at the current offset, extending as needed.
	if end := s.off + int64(len(p)); end > int64(len(s.buf)) {
		grown := make([]byte, end)
		copy(grown, s.buf)
		s.buf = grown
	}
	n := copy(s.buf[s.off:], p)
	s.off += int64(n)
	return n, nil
}

func (s *bufferStream) Seek(offset int64, whence int) (int64, error) {
	if s.closed {
		return 0, errors.New("httpmsg: seek on closed stream")
	}
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = s.off + offset
	case io.SeekEnd:
		abs = int64(len(s.buf)) + offset
	default:
		return 0, errors.New("httpmsg: invalid seek whence")
	}
	if abs < 0 {
		return 0, errors.New("httpmsg: negative seek position")
	}
	s.off = abs
	return abs, nil
}

func (s *bufferStream) Close() error {
	s.closed = true
	return nil
}

func (s *bufferStream) Size() int64 { return int64(len(s.buf)) }
