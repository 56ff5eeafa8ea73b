// Package native ships the framework's built-in HTTP message factories,
// implemented on net/http. One type satisfies all six factory contracts, so
// discovery finds it for every capability unless something more specific is
// installed.
//
// Importing the package is enough to make it discoverable:
//
//	import _ "github.com/km-arc/go-httpfactory/framework/httpmsg/native"
package native

import (
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/km-arc/go-httpfactory/framework/capability"
	"github.com/km-arc/go-httpfactory/framework/httpmsg"
)

// Name is the capability-registry identifier of MessageFactory.
const Name = "native.MessageFactory"

func init() {
	capability.Register(capability.Manifest{
		Name:      Name,
		Satisfies: capability.Kinds(),
		New:       func() any { return &MessageFactory{} },
	})
}

// MessageFactory implements all six httpmsg factory contracts.
type MessageFactory struct{}

// CreateRequest builds an outbound request with no body.
func (f *MessageFactory) CreateRequest(method, uri string) (*http.Request, error) {
	return http.NewRequest(method, uri, nil)
}

// CreateResponse builds an empty response with the given status.
func (f *MessageFactory) CreateResponse(status int) *httpmsg.Response {
	return httpmsg.NewResponse(status)
}

// CreateServerRequest builds a bare inbound request message.
func (f *MessageFactory) CreateServerRequest(method string, uri *url.URL) *httpmsg.ServerRequest {
	return httpmsg.NewServerRequest(method, uri)
}

// CreateStream builds an in-memory stream from a string.
func (f *MessageFactory) CreateStream(content string) httpmsg.Stream {
	return httpmsg.NewBufferStream([]byte(content))
}

// CreateStreamFromReader drains r into an in-memory stream.
func (f *MessageFactory) CreateStreamFromReader(r io.Reader) (httpmsg.Stream, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return httpmsg.NewBufferStream(b), nil
}

// CreateStreamFromFile reads path into an in-memory stream.
func (f *MessageFactory) CreateStreamFromFile(path string) (httpmsg.Stream, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return httpmsg.NewBufferStream(b), nil
}

// CreateUploadedFile wraps an open stream as an uploaded file.
func (f *MessageFactory) CreateUploadedFile(stream httpmsg.Stream, size int64, filename, mediaType string) *httpmsg.UploadedFile {
	return httpmsg.NewUploadedFile(stream, size, filename, mediaType)
}

// CreateURI parses a URI string.
func (f *MessageFactory) CreateURI(uri string) (*url.URL, error) {
	return url.Parse(uri)
}
