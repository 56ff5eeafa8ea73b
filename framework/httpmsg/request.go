package httpmsg

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

// ServerRequest is an inbound HTTP request message with Laravel-style input
// helpers. It is a standalone value: a ServerRequestFactory creates it from a
// method and URI, and the ServerRequestCreator fills in headers, body, form
// data, and uploaded files from a raw *http.Request.
type ServerRequest struct {
	method     string
	uri        *url.URL
	header     http.Header
	body       Stream
	query      url.Values
	form       url.Values
	uploads    map[string][]*UploadedFile
	attributes map[string]any
	remoteAddr string

	// raw is the underlying *http.Request when the message was built from one.
	// Needed for router-scoped lookups like chi URL params.
	raw *http.Request
}

// NewServerRequest creates a bare ServerRequest with the given method and URI.
func NewServerRequest(method string, uri *url.URL) *ServerRequest {
	query := url.Values{}
	if uri != nil {
		query = uri.Query()
	}
	return &ServerRequest{
		method:     method,
		uri:        uri,
		header:     make(http.Header),
		query:      query,
		form:       url.Values{},
		uploads:    make(map[string][]*UploadedFile),
		attributes: make(map[string]any),
	}
}

// ── Message surface ──────────────────────────────────────────────────────────

// Method returns the HTTP method.
func (r *ServerRequest) Method() string { return r.method }

// URI returns the request URI.
func (r *ServerRequest) URI() *url.URL { return r.uri }

// Path returns the URI path.
func (r *ServerRequest) Path() string {
	if r.uri == nil {
		return ""
	}
	return r.uri.Path
}

// Header returns a request header value.
func (r *ServerRequest) Header(key string) string { return r.header.Get(key) }

// Headers returns the full header map.
func (r *ServerRequest) Headers() http.Header { return r.header }

// Body returns the body stream (nil when the request has no body).
func (r *ServerRequest) Body() Stream { return r.body }

// IP returns the client address.
func (r *ServerRequest) IP() string { return r.remoteAddr }

// Raw returns the underlying *http.Request, or nil for synthetic requests.
func (r *ServerRequest) Raw() *http.Request { return r.raw }

// ── Builders (used by ServerRequestCreator) ──────────────────────────────────

// WithHeader sets a header value.
func (r *ServerRequest) WithHeader(key, value string) *ServerRequest {
	r.header.Set(key, value)
	return r
}

// WithBody replaces the body stream.
func (r *ServerRequest) WithBody(body Stream) *ServerRequest {
	r.body = body
	return r
}

// WithForm replaces the parsed form values.
func (r *ServerRequest) WithForm(form url.Values) *ServerRequest {
	r.form = form
	return r
}

// WithUploadedFiles replaces the uploaded-file map.
func (r *ServerRequest) WithUploadedFiles(files map[string][]*UploadedFile) *ServerRequest {
	r.uploads = files
	return r
}

// WithRemoteAddr records the client address.
func (r *ServerRequest) WithRemoteAddr(addr string) *ServerRequest {
	r.remoteAddr = addr
	return r
}

// WithRaw attaches the originating *http.Request.
func (r *ServerRequest) WithRaw(raw *http.Request) *ServerRequest {
	r.raw = raw
	return r
}

// ── Attributes ───────────────────────────────────────────────────────────────

// Attribute returns a request attribute set by middleware or the router.
func (r *ServerRequest) Attribute(key string) any { return r.attributes[key] }

// WithAttribute stores a request attribute.
func (r *ServerRequest) WithAttribute(key string, value any) *ServerRequest {
	r.attributes[key] = value
	return r
}

// ── Input helpers ────────────────────────────────────────────────────────────

// Query returns a query-string value.
func (r *ServerRequest) Query(key string, fallback ...string) string {
	v := r.query.Get(key)
	if v == "" && len(fallback) > 0 {
		return fallback[0]
	}
	return v
}

// Input returns a single input value — form body first, then query string.
func (r *ServerRequest) Input(key string, fallback ...string) string {
	if v := r.form.Get(key); v != "" {
		return v
	}
	if v := r.query.Get(key); v != "" {
		return v
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return ""
}

// All returns all input as a flat map (form + query; form wins).
func (r *ServerRequest) All() map[string]string {
	out := make(map[string]string)
	for k, v := range r.query {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	for k, v := range r.form {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}

// Has returns true if the key is present and non-empty.
func (r *ServerRequest) Has(key string) bool { return r.Input(key) != "" }

// BearerToken extracts the token from "Authorization: Bearer <token>".
func (r *ServerRequest) BearerToken() string {
	auth := r.header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// ContentType returns the Content-Type header value.
func (r *ServerRequest) ContentType() string { return r.header.Get("Content-Type") }

// IsJSON returns true when the request carries or expects JSON.
func (r *ServerRequest) IsJSON() bool {
	return strings.Contains(r.header.Get("Accept"), "application/json") ||
		strings.Contains(r.ContentType(), "application/json")
}

// RouteParam returns a URL route parameter (requires the chi router).
func (r *ServerRequest) RouteParam(key string) string {
	if r.raw == nil {
		return ""
	}
	return chi.URLParam(r.raw, key)
}

// ── Binding ──────────────────────────────────────────────────────────────────

// Bind decodes the request input into v. JSON bodies decode directly; form
// input maps through a JSON round-trip so `json:"name"` tags work for both.
func (r *ServerRequest) Bind(v any) error {
	if strings.Contains(r.ContentType(), "application/json") {
		return r.bindJSON(v)
	}
	return bindValues(r.form, v)
}

func (r *ServerRequest) bindJSON(v any) error {
	if r.body == nil {
		return errors.New("httpmsg: empty request body")
	}
	if _, err := r.body.Seek(0, io.SeekStart); err != nil {
		return err
	}
	b, err := io.ReadAll(r.body)
	if err != nil {
		return err
	}
	if len(b) == 0 {
		return errors.New("httpmsg: empty request body")
	}
	return json.Unmarshal(b, v)
}

// bindValues maps form values onto a struct via a JSON round-trip.
func bindValues(values url.Values, v any) error {
	m := make(map[string]any, len(values))
	for k, vals := range values {
		if len(vals) == 1 {
			m[k] = vals[0]
		} else {
			m[k] = vals
		}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

// ── Uploaded files ───────────────────────────────────────────────────────────

// File returns the first uploaded file for a field, or nil.
func (r *ServerRequest) File(key string) *UploadedFile {
	files := r.uploads[key]
	if len(files) == 0 {
		return nil
	}
	return files[0]
}

// Files returns all uploaded files for a field.
func (r *ServerRequest) Files(key string) []*UploadedFile { return r.uploads[key] }

// UploadedFiles returns the full uploaded-file map.
func (r *ServerRequest) UploadedFiles() map[string][]*UploadedFile { return r.uploads }
