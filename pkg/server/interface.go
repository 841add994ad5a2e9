/*
Package server implements msgpack IPC for the word trie.

The server reads a stream of msgpack-encoded requests from its input and
writes one msgpack-encoded response per request to its output, normally
stdin and stdout of the wordtrie process. Logs go to stderr.

# IPC

Every request is a map with an ID, an action and the action's arguments:

	{"id": "req_001", "a": "complete", "w": "pro", "l": 5}
	{"id": "req_002", "a": "insert", "w": "protocol", "f": 40}
	{"id": "req_003", "a": "delete", "w": "protocol"}
	{"id": "req_004", "a": "search", "w": "program"}
	{"id": "req_005", "a": "count", "w": "pro"}
	{"id": "req_006", "a": "stats"}

Completions are ranked by frequency, ties broken alphabetically, and carry a
competition rank:

	{"id": "req_001", "s": [{"w": "programming", "f": 120, "r": 1}, ...], "c": 5, "t": 42}

Mutations and lookups answer with an OperationResponse; "ok" is the boolean
outcome and "n" the numeric one (new frequency, prefix count):

	{"id": "req_004", "a": "search", "ok": true, "n": 100}

Failed requests get a CompletionError with code 400 (bad request) or 404
(unknown action).

Requests are handled one at a time, in order.
*/
package server

// Request is any client message. Fields not used by an action are ignored.
type Request struct {
	ID        string `msgpack:"id"`
	Action    string `msgpack:"a"`
	Word      string `msgpack:"w"`
	Frequency int    `msgpack:"f,omitempty"`
	Limit     int    `msgpack:"l,omitempty"`
}

// CompletionSuggestion - minimal suggestion response
type CompletionSuggestion struct {
	Word      string `msgpack:"w"`
	Frequency int    `msgpack:"f"`
	Rank      uint16 `msgpack:"r"`
}

// CompletionResponse - completion response, TimeTaken in microseconds
type CompletionResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"c"`
	TimeTaken   int64                  `msgpack:"t"`
}

// OperationResponse answers insert, delete, search and count.
type OperationResponse struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"a"`
	OK     bool   `msgpack:"ok"`
	Value  int    `msgpack:"n"`
}

// StatsResponse carries completer statistics.
type StatsResponse struct {
	ID    string         `msgpack:"id"`
	Stats map[string]int `msgpack:"stats"`
}

// StatusResponse is sent on startup and for health checks.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// CompletionError holds basic error information for failed requests
type CompletionError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
