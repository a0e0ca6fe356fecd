// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and the JSON response envelope
// for the REST API. Authentication, logging, tracing, compression, and
// rate-limiting concerns are all handled at this layer before requests
// are forwarded to the service layer.
package http
