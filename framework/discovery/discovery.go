// Package discovery locates installed HTTP message factory implementations at
// run time. It is the fallback path of the HTTP factory provider: when no
// implementation is configured for a capability, the provider binds one of the
// Find functions below instead of a concrete constructor.
//
// Discovery reads the capability registry and picks the first registered
// manifest declaring the wanted kind, so "first imported wins" — matching how
// implementations announce themselves in init().
package discovery

import (
	"fmt"

	"github.com/km-arc/go-httpfactory/framework/capability"
	"github.com/km-arc/go-httpfactory/framework/httpmsg"
)

// find constructs the first registered candidate for kind.
func find(kind capability.Kind) (any, error) {
	candidates := capability.Candidates(kind)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("discovery: no implementation registered for %s", kind.Contract())
	}
	return candidates[0].New(), nil
}

// FindRequestFactory locates an installed RequestFactory.
func FindRequestFactory() (httpmsg.RequestFactory, error) {
	return as[httpmsg.RequestFactory](capability.Request)
}

// FindResponseFactory locates an installed ResponseFactory.
func FindResponseFactory() (httpmsg.ResponseFactory, error) {
	return as[httpmsg.ResponseFactory](capability.Response)
}

// FindServerRequestFactory locates an installed ServerRequestFactory.
func FindServerRequestFactory() (httpmsg.ServerRequestFactory, error) {
	return as[httpmsg.ServerRequestFactory](capability.ServerRequest)
}

// FindStreamFactory locates an installed StreamFactory.
func FindStreamFactory() (httpmsg.StreamFactory, error) {
	return as[httpmsg.StreamFactory](capability.Stream)
}

// FindUploadedFileFactory locates an installed UploadedFileFactory.
func FindUploadedFileFactory() (httpmsg.UploadedFileFactory, error) {
	return as[httpmsg.UploadedFileFactory](capability.UploadedFile)
}

// FindURIFactory locates an installed URIFactory.
func FindURIFactory() (httpmsg.URIFactory, error) {
	return as[httpmsg.URIFactory](capability.URI)
}

// as finds a candidate for kind and asserts the concrete type actually
// implements the contract. The registry trusts declared conformance, so a
// misdeclared manifest surfaces here, at resolution.
func as[T any](kind capability.Kind) (T, error) {
	var zero T
	v, err := find(kind)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("discovery: %T does not implement %s", v, kind.Contract())
	}
	return typed, nil
}
