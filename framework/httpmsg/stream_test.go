package httpmsg_test

import (
	"io"
	"testing"

	"github.com/km-arc/go-httpfactory/framework/httpmsg"
)

func TestBufferStream_ReadAll(t *testing.T) {
	s := httpmsg.NewBufferStream([]byte("hello"))

	b, err := io.ReadAll(s)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(b) != "hello" {
		t.Errorf("content: got %q", b)
	}
	if s.Size() != 5 {
		t.Errorf("Size: got %d", s.Size())
	}
}

func TestBufferStream_SeekAndReread(t *testing.T) {
	s := httpmsg.NewBufferStream([]byte("hello"))
	io.ReadAll(s)

	if _, err := s.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	b, _ := io.ReadAll(s)
	if string(b) != "hello" {
		t.Errorf("reread after seek: got %q", b)
	}
}

func TestBufferStream_SeekVariants(t *testing.T) {
	s := httpmsg.NewBufferStream([]byte("abcdef"))

	if pos, _ := s.Seek(2, io.SeekStart); pos != 2 {
		t.Errorf("SeekStart: got %d", pos)
	}
	if pos, _ := s.Seek(1, io.SeekCurrent); pos != 3 {
		t.Errorf("SeekCurrent: got %d", pos)
	}
	if pos, _ := s.Seek(-1, io.SeekEnd); pos != 5 {
		t.Errorf("SeekEnd: got %d", pos)
	}
	if _, err := s.Seek(-10, io.SeekStart); err == nil {
		t.Error("negative position should error")
	}
}

func TestBufferStream_WriteExtends(t *testing.T) {
	s := httpmsg.NewBufferStream(nil)

	if _, err := s.Write([]byte("abc")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if s.Size() != 3 {
		t.Errorf("Size after write: got %d", s.Size())
	}

	s.Seek(1, io.SeekStart)
	s.Write([]byte("XY"))
	s.Seek(0, io.SeekStart)
	b, _ := io.ReadAll(s)
	if string(b) != "aXY" {
		t.Errorf("overwrite: got %q", b)
	}
}

func TestBufferStream_ClosedOperationsFail(t *testing.T) {
	s := httpmsg.NewBufferStream([]byte("x"))
	s.Close()

	if _, err := s.Read(make([]byte, 1)); err == nil || err == io.EOF {
		t.Error("Read after Close should fail")
	}
	if _, err := s.Write([]byte("y")); err == nil {
		t.Error("Write after Close should fail")
	}
	if _, err := s.Seek(0, io.SeekStart); err == nil {
		t.Error("Seek after Close should fail")
	}
}
