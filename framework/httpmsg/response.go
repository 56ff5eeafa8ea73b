package httpmsg

import (
	"encoding/json"
	"io"
	"net/http"
)

// Response is a buildable HTTP response message. Unlike the stdlib's
// http.ResponseWriter it is a value that can be created, decorated, and passed
// around before anything is written to the wire.
type Response struct {
	status int
	header http.Header
	body   Stream
}

// NewResponse creates a Response with the given status and empty headers.
func NewResponse(status int) *Response {
	return &Response{status: status, header: make(http.Header)}
}

// Status returns the response status code.
func (r *Response) Status() int { return r.status }

// Header returns the mutable header map.
func (r *Response) Header() http.Header { return r.header }

// Body returns the body stream (nil when no body has been set).
func (r *Response) Body() Stream { return r.body }

// WithStatus sets the status code and returns the response for chaining.
func (r *Response) WithStatus(status int) *Response {
	r.status = status
	return r
}

// WithHeader sets a header value and returns the response for chaining.
func (r *Response) WithHeader(key, value string) *Response {
	r.header.Set(key, value)
	return r
}

// WithBody replaces the body stream and returns the response for chaining.
func (r *Response) WithBody(body Stream) *Response {
	r.body = body
	return r
}

// JSON encodes v as the response body and sets the Content-Type header.
//
//	res := f.CreateResponse(200).JSON(map[string]any{"data": users})
func (r *Response) JSON(v any) *Response {
	b, err := json.Marshal(v)
	if err != nil {
		// Marshal only fails on unsupported values; treat as a server error.
		r.status = http.StatusInternalServerError
		b = []byte(`{"message":"Server Error."}`)
	}
	r.header.Set("Content-Type", "application/json")
	r.body = NewBufferStream(b)
	return r
}

// Write flushes the message to w: headers, status, then body.
func (r *Response) Write(w http.ResponseWriter) error {
	for key, values := range r.header {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}
	w.WriteHeader(r.status)
	if r.body == nil {
		return nil
	}
	if _, err := r.body.Seek(0, io.SeekStart); err != nil {
		return err
	}
	_, err := io.Copy(w, r.body)
	return err
}
