// Package httpmsg defines the framework's HTTP message contracts: the six
// factory interfaces (request, response, server request, stream, uploaded
// file, URI) and the message types they produce.
//
// The shape mirrors PHP's PSR-17 factory suite translated to Go: factories are
// small interfaces so applications can swap implementations per capability,
// and the ServerRequestCreator composes four of them to turn a raw inbound
// *http.Request into a ServerRequest.
//
// # Factories
//
//	var f httpmsg.StreamFactory = &native.MessageFactory{}
//	body := f.CreateStream(`{"name":"Alice"}`)
//
// # Server requests
//
//	creator := httpmsg.NewServerRequestCreator(srf, urif, upf, stf)
//	req, err := creator.FromRequest(r)
//	name := req.Input("name")
//	token := req.BearerToken()
//
// Implementations are expected to register a capability.Manifest so discovery
// and the HTTP factory provider can find them by name; see package capability.
package httpmsg
