// Package capability defines the six HTTP message factory roles the framework
// knows how to wire, and a process-wide registry of implementation manifests.
//
// Go has no "new from class name", so implementations announce themselves with
// a Manifest: a stable type identifier, the set of factory contracts the type
// declares satisfying, and a zero-argument constructor. Registration usually
// happens in an init() — the same pattern database/sql drivers use:
//
//	func init() {
//	    capability.Register(capability.Manifest{
//	        Name:      "native.MessageFactory",
//	        Satisfies: capability.Kinds(),
//	        New:       func() any { return &MessageFactory{} },
//	    })
//	}
//
// The declared contract set is trusted as-is. Conformance checks read the
// manifest; they never construct the type or probe its behavior, so a manifest
// that misdeclares a contract is only caught when something resolves it.
package capability

import (
	"fmt"
	"sync"
)

// ── Kinds ────────────────────────────────────────────────────────────────────

// Kind names one HTTP factory role. The string value doubles as the container
// binding key.
type Kind string

// The six factory roles, in canonical declaration order.
const (
	Request       Kind = "http.factory.request"
	Response      Kind = "http.factory.response"
	ServerRequest Kind = "http.factory.server-request"
	Stream        Kind = "http.factory.stream"
	UploadedFile  Kind = "http.factory.uploaded-file"
	URI           Kind = "http.factory.uri"
)

// ServerRequestCreator is the one synthetic kind: a composite built from four
// resolved factories rather than constructed directly. It is never a member of
// Kinds() and has no manifest or discovery entry of its own.
const ServerRequestCreator Kind = "http.server-request-creator"

// Kinds returns the six factory kinds in canonical order.
// A fresh slice each call — callers may reorder or append freely.
func Kinds() []Kind {
	return []Kind{Request, Response, ServerRequest, Stream, UploadedFile, URI}
}

// contracts maps each kind to the Go interface an implementation must satisfy.
var contracts = map[Kind]string{
	Request:       "httpmsg.RequestFactory",
	Response:      "httpmsg.ResponseFactory",
	ServerRequest: "httpmsg.ServerRequestFactory",
	Stream:        "httpmsg.StreamFactory",
	UploadedFile:  "httpmsg.UploadedFileFactory",
	URI:           "httpmsg.URIFactory",
}

// Contract returns the interface name an implementation of k must declare.
func (k Kind) Contract() string {
	if c, ok := contracts[k]; ok {
		return c
	}
	return string(k)
}

// ── Manifests ────────────────────────────────────────────────────────────────

// Constructor builds a concrete factory implementation with no arguments.
type Constructor func() any

// Manifest describes one installed implementation: its stable name, the factory
// contracts it declares satisfying (including any gained by embedding), and how
// to construct it.
type Manifest struct {
	Name      string
	Satisfies []Kind
	New       Constructor
}

// Declares reports whether the manifest's declared contract set contains k.
func (m Manifest) Declares(k Kind) bool {
	for _, s := range m.Satisfies {
		if s == k {
			return true
		}
	}
	return false
}

// ── Registry ─────────────────────────────────────────────────────────────────

var (
	mu        sync.RWMutex
	manifests = make(map[string]Manifest)
	order     []string // registration order, for deterministic discovery
)

// Register adds (or replaces) a manifest in the process-wide registry.
func Register(m Manifest) {
	if m.Name == "" || m.New == nil {
		panic(fmt.Sprintf("capability: invalid manifest %+v", m))
	}
	mu.Lock()
	defer mu.Unlock()
	if _, exists := manifests[m.Name]; !exists {
		order = append(order, m.Name)
	}
	manifests[m.Name] = m
}

// Lookup returns the manifest registered under name.
func Lookup(name string) (Manifest, bool) {
	mu.RLock()
	defer mu.RUnlock()
	m, ok := manifests[name]
	return m, ok
}

// Candidates returns every registered manifest declaring k, in registration
// order. Discovery picks the first.
func Candidates(k Kind) []Manifest {
	mu.RLock()
	defer mu.RUnlock()
	var out []Manifest
	for _, name := range order {
		if m := manifests[name]; m.Declares(k) {
			out = append(out, m)
		}
	}
	return out
}

// Names returns all registered manifest names in registration order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, len(order))
	copy(out, order)
	return out
}
