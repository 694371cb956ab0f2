/*
Package server implements msgpack IPC for variant matching services.

The server provides a minimal interface for approximate lookups using msgpack
serialization over stdin/stdout. Messages are processed synchronously with
timing info included in responses.

# IPC

Clients send structured messages via stdin and receive responses through
stdout. Each message carries an ID and an op selector.

A single-query lookup:

	{"id": "req_001", "op": "variants", "q": "udnerstand", "d": 3, "l": 10}

The server responds with ranked variants per input:

	{"id": "req_001", "results": [{"input": "udnerstand", "variants": [...]}], "c": 1, "t": 145}

Free-text matching segments the text into token n-grams and returns one span
per result, left to right:

	{"id": "req_002", "op": "match", "q": "Salamander lizard frog", "n": 2}

A "ping" op answers with an ok status for liveness checks.

Result objects carry the stable field names "input", "variants", "text",
"score" and "lexicons"; bindings pattern-match on them.
*/
package server

import "github.com/bastiangx/lexivar/pkg/variant"

// Request - variant lookup or text match request.
type Request struct {
	ID string `msgpack:"id"`
	// Op selects the operation: "variants", "match" or "ping".
	Op    string `msgpack:"op"`
	Query string `msgpack:"q"`
	// MaxDistance overrides the configured edit distance budget when > 0.
	MaxDistance float64 `msgpack:"d,omitempty"`
	// MaxNgram overrides the configured n-gram bound when > 0 (match op only).
	MaxNgram int `msgpack:"n,omitempty"`
	// Limit overrides the configured match cap when > 0.
	Limit int `msgpack:"l,omitempty"`
}

// Response - lookup response with one result per input span.
type Response struct {
	ID        string                  `msgpack:"id"`
	Results   []variant.VariantResult `msgpack:"results"`
	Count     int                     `msgpack:"c"`
	TimeTaken int64                   `msgpack:"t"`
}

// StatusResponse - handshake and ping replies.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse - returned when an op fails.
type ErrorResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Error  string `msgpack:"error"`
	Status int    `msgpack:"status"`
}
