package httpmsg

import (
	"net/http"
	"net/url"
	"strings"
)

const maxMultipartMemory = 32 << 20 // 32 MB

// ServerRequestCreator assembles ServerRequest messages from raw inbound
// requests. It owns no construction logic of its own — every part of the
// message is produced by one of the four injected factories.
//
// The four factories are taken in fixed order: server request, URI, uploaded
// file, stream.
type ServerRequestCreator struct {
	serverRequest ServerRequestFactory
	uri           URIFactory
	uploadedFile  UploadedFileFactory
	stream        StreamFactory
}

// NewServerRequestCreator builds a creator from its four factories.
func NewServerRequestCreator(
	serverRequest ServerRequestFactory,
	uri URIFactory,
	uploadedFile UploadedFileFactory,
	stream StreamFactory,
) *ServerRequestCreator {
	return &ServerRequestCreator{
		serverRequest: serverRequest,
		uri:           uri,
		uploadedFile:  uploadedFile,
		stream:        stream,
	}
}

// ServerRequestFactory returns the injected server-request factory.
func (c *ServerRequestCreator) ServerRequestFactory() ServerRequestFactory { return c.serverRequest }

// URIFactory returns the injected URI factory.
func (c *ServerRequestCreator) URIFactory() URIFactory { return c.uri }

// UploadedFileFactory returns the injected uploaded-file factory.
func (c *ServerRequestCreator) UploadedFileFactory() UploadedFileFactory { return c.uploadedFile }

// StreamFactory returns the injected stream factory.
func (c *ServerRequestCreator) StreamFactory() StreamFactory { return c.stream }

// FromRequest converts a raw *http.Request into a ServerRequest: URI through
// the URI factory, the message through the server-request factory, body through
// the stream factory, and multipart files through the uploaded-file factory.
func (c *ServerRequestCreator) FromRequest(r *http.Request) (*ServerRequest, error) {
	u, err := c.uri.CreateURI(requestURL(r))
	if err != nil {
		return nil, err
	}

	req := c.serverRequest.CreateServerRequest(r.Method, u)
	req.WithRemoteAddr(r.RemoteAddr).WithRaw(r)
	for key, values := range r.Header {
		for _, v := range values {
			req.Headers().Add(key, v)
		}
	}

	ct := r.Header.Get("Content-Type")
	switch {
	case strings.Contains(ct, "multipart/form-data"):
		if err := c.parseMultipart(r, req); err != nil {
			return nil, err
		}
	case strings.Contains(ct, "application/x-www-form-urlencoded"):
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		req.WithForm(r.PostForm)
	default:
		if r.Body != nil && r.Body != http.NoBody {
			body, err := c.stream.CreateStreamFromReader(r.Body)
			if err != nil {
				return nil, err
			}
			req.WithBody(body)
		}
	}

	return req, nil
}

// parseMultipart fills form values and uploaded files from a multipart body.
func (c *ServerRequestCreator) parseMultipart(r *http.Request, req *ServerRequest) error {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return err
	}
	req.WithForm(url.Values(r.MultipartForm.Value))

	files := make(map[string][]*UploadedFile, len(r.MultipartForm.File))
	for field, headers := range r.MultipartForm.File {
		for _, fh := range headers {
			src, err := fh.Open()
			if err != nil {
				return err
			}
			stream, err := c.stream.CreateStreamFromReader(src)
			src.Close()
			if err != nil {
				return err
			}
			files[field] = append(files[field], c.uploadedFile.CreateUploadedFile(
				stream, fh.Size, fh.Filename, fh.Header.Get("Content-Type")))
		}
	}
	req.WithUploadedFiles(files)
	return nil
}

// requestURL reconstructs the full URL of an inbound request.
func requestURL(r *http.Request) string {
	target := r.RequestURI
	if target == "" && r.URL != nil {
		target = r.URL.RequestURI()
	}
	// Proxy-style requests carry an absolute-form target already.
	if strings.Contains(target, "://") {
		return target
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + target
}
