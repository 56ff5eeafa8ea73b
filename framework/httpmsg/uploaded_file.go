package httpmsg

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// UploadedFile is one file received in a multipart request, backed by an
// already-open stream.
type UploadedFile struct {
	stream    Stream
	size      int64
	filename  string
	mediaType string
	moved     bool
}

// NewUploadedFile wraps an open stream as an uploaded file. filename and
// mediaType are the client-supplied values and must not be trusted.
func NewUploadedFile(stream Stream, size int64, filename, mediaType string) *UploadedFile {
	return &UploadedFile{stream: stream, size: size, filename: filename, mediaType: mediaType}
}

// Stream returns the underlying stream. Invalid after MoveTo.
func (f *UploadedFile) Stream() Stream { return f.stream }

// Size returns the file size in bytes.
func (f *UploadedFile) Size() int64 { return f.size }

// Filename returns the client-supplied file name.
func (f *UploadedFile) Filename() string { return f.filename }

// MediaType returns the client-supplied media type.
func (f *UploadedFile) MediaType() string { return f.mediaType }

// MoveTo writes the file into dir under a generated unique name (keeping the
// client extension) and returns the target path. A file can be moved once.
//
//	// Laravel: $request->file('avatar')->store('avatars')
//	path, err := req.File("avatar").MoveTo("./storage/avatars")
func (f *UploadedFile) MoveTo(dir string) (string, error) {
	if f.moved {
		return "", errors.New("httpmsg: uploaded file already moved")
	}
	if f.stream == nil {
		return "", errors.New("httpmsg: uploaded file has no stream")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	target := filepath.Join(dir, uuid.NewString()+filepath.Ext(f.filename))
	out, err := os.Create(target)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := f.stream.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	if _, err := io.Copy(out, f.stream); err != nil {
		return "", err
	}
	f.moved = true
	return target, nil
}
