// Package http serves the mock node over HTTP.
//
// Every route of [rpc] is mounted on a chi router. Requests pass through
// request id, access logging and gzip middleware; node routes additionally
// require a bearer token when the node is configured with a signing key.
package http
