// Package wind is the request-dispatch and response-assembly engine of a
// small HTTP serving library: it maps an incoming request to a handler,
// lets that handler accumulate buffered output, and turns the accumulated
// output plus headers into a single well-formed HTTP response, including
// conditional-caching (ETag) short-circuiting.
//
// # Overview
//
// An [App] holds an ordered route table of [Path] bindings. Each inbound
// (connection, request) pair is matched by exact route string; the matched
// path instantiates a fresh [Responder] that runs the handler, buffers its
// writes in a [ChunkBuffer], and on finish prepends the serialized header
// block and hands everything to the transport in one write.
//
// A minimal application:
//
//	func helloWind(r *wind.Request) (any, error) {
//		return "hello wind!", nil
//	}
//
//	type helloResource struct{ wind.BaseResource }
//
//	func (helloResource) HandleGet(t *wind.Responder) error {
//		t.Write("hello wind!")
//		return t.Finish()
//	}
//
//	app, err := wind.NewApp([]*wind.Path{
//		wind.MustPathFunc(helloWind, "/", "get"),
//		wind.MustPath(func() wind.Resource { return &helloResource{} }, "/resource", "get"),
//	})
//
// # Handlers
//
// Routes bind either a plain [HandlerFunc], whose return value becomes the
// body, or a constructor for a [Resource] type with one method slot per
// supported HTTP method. Unimplemented slots refuse with MethodNotAllowed
// via the embedded [BaseResource]. Handlers signal HTTP conditions by
// returning a [*Error]; anything else is logged with full detail and
// answered with a 500.
//
// # Buffered responses
//
// All writes are held in the responder's chunk buffer until a completion
// path runs. [Responder.Finish] validates the conditional-caching ETag,
// derives the content length and sends the buffered body; a matched
// If-None-Match short-circuits into a bodiless 304 instead.
// [Responder.SendResponse] discards the buffer entirely and sends an error
// body, so a failure mid-handler never leaks partial content.
//
// # Scope
//
// Wire transport, request parsing, TLS, keep-alive, chunked transfer and
// HTTP/2 are outside this core: the transport side is the [Connection]
// interface, and routes match by exact string only. The httpserver
// subpackage supplies a minimal TCP transport for running real servers.
package wind
