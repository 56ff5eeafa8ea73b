package httpmsg

import (
	"io"
	"net/http"
	"net/url"
)

// ── Factory contracts ────────────────────────────────────────────────────────
//
// One interface per capability. Implementations may satisfy a single contract
// or all six on one type; the capability manifest records which.

// RequestFactory creates outbound client requests.
//
//	// PSR-17: RequestFactoryInterface::createRequest($method, $uri)
type RequestFactory interface {
	CreateRequest(method, uri string) (*http.Request, error)
}

// ResponseFactory creates response messages.
//
//	// PSR-17: ResponseFactoryInterface::createResponse($code)
type ResponseFactory interface {
	CreateResponse(status int) *Response
}

// ServerRequestFactory creates inbound server-side request messages.
//
//	// PSR-17: ServerRequestFactoryInterface::createServerRequest($method, $uri)
type ServerRequestFactory interface {
	CreateServerRequest(method string, uri *url.URL) *ServerRequest
}

// StreamFactory creates message body streams.
//
//	// PSR-17: StreamFactoryInterface
type StreamFactory interface {
	CreateStream(content string) Stream
	CreateStreamFromReader(r io.Reader) (Stream, error)
	CreateStreamFromFile(path string) (Stream, error)
}

// UploadedFileFactory creates uploaded-file values from an already-open stream.
//
//	// PSR-17: UploadedFileFactoryInterface::createUploadedFile(...)
type UploadedFileFactory interface {
	CreateUploadedFile(stream Stream, size int64, filename, mediaType string) *UploadedFile
}

// URIFactory parses and creates URIs.
//
//	// PSR-17: UriFactoryInterface::createUri($uri)
type URIFactory interface {
	CreateURI(uri string) (*url.URL, error)
}
