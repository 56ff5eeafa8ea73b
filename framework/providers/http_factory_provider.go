package providers

import (
	"fmt"

	"github.com/km-arc/go-httpfactory/framework/capability"
	"github.com/km-arc/go-httpfactory/framework/container"
	"github.com/km-arc/go-httpfactory/framework/discovery"
	"github.com/km-arc/go-httpfactory/framework/httpmsg"
)

// ── Discovery table ───────────────────────────────────────────────────────────

// discoveryTable maps each factory kind to its discovery operation. Defined
// once per process, never mutated; read concurrently without locking.
var discoveryTable = map[capability.Kind]func() (any, error){
	capability.Request:       func() (any, error) { return discovery.FindRequestFactory() },
	capability.Response:      func() (any, error) { return discovery.FindResponseFactory() },
	capability.ServerRequest: func() (any, error) { return discovery.FindServerRequestFactory() },
	capability.Stream:        func() (any, error) { return discovery.FindStreamFactory() },
	capability.UploadedFile:  func() (any, error) { return discovery.FindUploadedFileFactory() },
	capability.URI:           func() (any, error) { return discovery.FindURIFactory() },
}

// ── Configuration error ───────────────────────────────────────────────────────

// ConfigurationError reports an explicitly configured implementation that does
// not declare the factory contract required by its capability slot.
type ConfigurationError struct {
	// Implementation is the configured implementation name.
	Implementation string
	// Contract is the factory interface the implementation fails to declare.
	Contract string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("httpfactory: implementation %q does not declare %s", e.Implementation, e.Contract)
}

// ── HTTPFactoryProvider ───────────────────────────────────────────────────────

// HTTPFactoryImplementations selects a concrete implementation per factory
// kind, by capability-registry name. Fields are processed in declared order:
// Request, Response, ServerRequest, Stream, UploadedFile, URI. An empty field
// means "discover an installed implementation at resolution time".
type HTTPFactoryImplementations struct {
	Request       string
	Response      string
	ServerRequest string
	Stream        string
	UploadedFile  string
	URI           string
}

// names returns the configured name per kind.
func (i HTTPFactoryImplementations) names() map[capability.Kind]string {
	return map[capability.Kind]string{
		capability.Request:       i.Request,
		capability.Response:      i.Response,
		capability.ServerRequest: i.ServerRequest,
		capability.Stream:        i.Stream,
		capability.UploadedFile:  i.UploadedFile,
		capability.URI:           i.URI,
	}
}

// HTTPFactoryProvider contributes the six HTTP message factory bindings plus
// the composite server-request-creator binding. It only wires: no factory or
// message is constructed until the container resolves a binding.
//
// The PHP ancestry is the PSR-17 service provider pattern: explicit class
// names win, HTTPlug-style discovery fills the gaps.
type HTTPFactoryProvider struct {
	bindings map[string]container.Factory
}

// NewHTTPFactoryProvider validates the configured implementations and builds
// the binding set.
//
// Each explicitly named implementation must have a capability manifest
// declaring the contract of its slot. The check is declarative only — the
// manifest's word is trusted, nothing is constructed or probed. Validation is
// fail-fast in declared kind order: the first offending name aborts
// construction with a *ConfigurationError and no provider is produced.
func NewHTTPFactoryProvider(impls HTTPFactoryImplementations) (*HTTPFactoryProvider, error) {
	names := impls.names()
	bindings := make(map[string]container.Factory, 7)

	for _, kind := range capability.Kinds() {
		factory, err := bindingFor(kind, names[kind])
		if err != nil {
			return nil, err
		}
		bindings[string(kind)] = factory
	}

	// Composite: resolves its four sub-dependencies through the container at
	// resolution time, in fixed order.
	bindings[string(capability.ServerRequestCreator)] = func(c *container.Container) any {
		return httpmsg.NewServerRequestCreator(
			container.Resolve[httpmsg.ServerRequestFactory](c, string(capability.ServerRequest)),
			container.Resolve[httpmsg.URIFactory](c, string(capability.URI)),
			container.Resolve[httpmsg.UploadedFileFactory](c, string(capability.UploadedFile)),
			container.Resolve[httpmsg.StreamFactory](c, string(capability.Stream)),
		)
	}

	return &HTTPFactoryProvider{bindings: bindings}, nil
}

// bindingFor builds the factory for one kind: the manifest constructor when an
// implementation is named, the kind's discovery delegate otherwise.
func bindingFor(kind capability.Kind, name string) (container.Factory, error) {
	if name == "" {
		find := discoveryTable[kind]
		return func(_ *container.Container) any {
			v, err := find()
			if err != nil {
				panic(fmt.Sprintf("httpfactory: resolving %s: %v", kind, err))
			}
			return v
		}, nil
	}

	manifest, ok := capability.Lookup(name)
	if !ok || !manifest.Declares(kind) {
		return nil, &ConfigurationError{Implementation: name, Contract: kind.Contract()}
	}
	construct := manifest.New
	return func(_ *container.Container) any { return construct() }, nil
}

// Bindings returns the seven factory bindings, keyed by kind. Pure accessor:
// every call returns the same logical mapping, as a copy the caller may
// mutate freely.
func (p *HTTPFactoryProvider) Bindings() map[string]container.Factory {
	out := make(map[string]container.Factory, len(p.bindings))
	for kind, factory := range p.bindings {
		out[kind] = factory
	}
	return out
}

// Extensions returns nothing: this provider decorates no existing entries. It
// is present to satisfy the ServiceProvider contract.
func (p *HTTPFactoryProvider) Extensions() map[string]container.Extender {
	return nil
}
