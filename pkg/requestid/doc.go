// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a well-formed X-Request-ID header sent by the client or
// generates a UUIDv4, stores it in the request context and echoes it back in
// the response header. Handlers read it with FromContext; LoggerExtractor
// plugs it into package logger so every record written with the request
// context carries "request_id".
package requestid
