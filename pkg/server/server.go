package server

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/wordtrie/internal/logger"
	"github.com/bastiangx/wordtrie/internal/utils"
	"github.com/bastiangx/wordtrie/pkg/config"
	"github.com/bastiangx/wordtrie/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	// ErrUnknownAction is returned for requests naming an action the server does not have.
	ErrUnknownAction = errors.New("unknown action")
	// ErrBadRequest is returned for requests with missing or out of range arguments.
	ErrBadRequest = errors.New("bad request")
)

// statsEvery is how often, in requests, the server logs completer stats at debug level.
const statsEvery = 1000

// maxRank bounds the limit so competition ranks fit the uint16 wire field.
const maxRank = math.MaxUint16

// Server handles the IPC for word completions
type Server struct {
	completer    suggest.ICompleter
	config       *config.Config
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	logger       *log.Logger
	requestCount int
}

// NewServer creates a completion server reading requests from r and writing
// responses to w. A nil cfg uses the defaults; a nil l logs with the
// "server" prefix on the default logger's output.
func NewServer(completer suggest.ICompleter, cfg *config.Config, r io.Reader, w io.Writer, l *log.Logger) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if l == nil {
		l = logger.New("server")
	}
	return &Server{
		completer: completer,
		config:    cfg,
		decoder:   msgpack.NewDecoder(r),
		encoder:   msgpack.NewEncoder(w),
		logger:    l,
	}
}

// Start announces readiness and serves requests until the input ends.
// Every msgpack value on the input gets exactly one response; a value that
// is not a request gets a 400. An input that is not valid msgpack at all
// cannot be resynchronized and ends the loop with an error.
func (s *Server) Start() error {
	s.logger.Debug("Starting Server.")

	if err := s.encoder.Encode(StatusResponse{Status: "ready"}); err != nil {
		return fmt.Errorf("failed to write ready status: %w", err)
	}

	for {
		var raw msgpack.RawMessage
		if err := s.decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				s.logger.Debug("Input closed, stopping server")
				return nil
			}
			return fmt.Errorf("failed to read request: %w", err)
		}

		var req Request
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			s.logger.Errorf("Decoding request: %v", err)
			if err := s.sendError("", fmt.Errorf("%w: %v", ErrBadRequest, err)); err != nil {
				return err
			}
			continue
		}

		if err := s.handleRequest(&req); err != nil {
			return err
		}
	}
}

// handleRequest dispatches one request and writes its response. Only write
// failures are returned; request errors are reported to the client.
func (s *Server) handleRequest(req *Request) error {
	s.requestCount++
	if s.requestCount%statsEvery == 0 {
		s.logger.Debug("Server stats", "requests", s.requestCount, "stats", s.completer.Stats())
	}

	response, err := s.dispatch(req)
	if err != nil {
		s.logger.Debugf("Request %s failed: %v", req.ID, err)
		return s.sendError(req.ID, err)
	}
	if err := s.encoder.Encode(response); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

func (s *Server) dispatch(req *Request) (any, error) {
	switch req.Action {
	case "complete":
		return s.handleComplete(req)
	case "insert":
		if req.Word == "" {
			return nil, fmt.Errorf("%w: missing 'w' parameter", ErrBadRequest)
		}
		s.completer.AddWord(req.Word, req.Frequency)
		freq, _ := s.completer.Frequency(req.Word)
		return OperationResponse{ID: req.ID, Action: req.Action, OK: true, Value: freq}, nil
	case "delete":
		ok := s.completer.RemoveWord(req.Word)
		return OperationResponse{ID: req.ID, Action: req.Action, OK: ok}, nil
	case "search":
		freq, ok := s.completer.Frequency(req.Word)
		return OperationResponse{ID: req.ID, Action: req.Action, OK: ok, Value: freq}, nil
	case "count":
		return OperationResponse{ID: req.ID, Action: req.Action, OK: true, Value: s.completer.Count(req.Word)}, nil
	case "stats":
		return StatsResponse{ID: req.ID, Stats: s.completer.Stats()}, nil
	case "health":
		return StatusResponse{ID: req.ID, Status: "ok"}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, req.Action)
	}
}

// handleComplete validates the prefix against the server limits and ranks
// the matching words. Filtered prefixes get an empty result, not an error.
func (s *Server) handleComplete(req *Request) (any, error) {
	prefix := req.Word
	cfg := s.config.Server

	length := utf8.RuneCountInString(prefix)
	if length < cfg.MinPrefix {
		return nil, fmt.Errorf("%w: prefix must be at least %d characters", ErrBadRequest, cfg.MinPrefix)
	}
	if length > cfg.MaxPrefix {
		return nil, fmt.Errorf("%w: prefix exceeds maximum length of %d characters", ErrBadRequest, cfg.MaxPrefix)
	}

	limit := req.Limit
	if limit < 1 {
		limit = suggest.DefaultLimit
	}
	limit = min(limit, cfg.MaxLimit, maxRank)

	start := time.Now()
	var suggestions []suggest.Suggestion
	if !cfg.EnableFilter || utils.IsValidInput(prefix) {
		suggestions = s.completer.Complete(prefix, limit)
	}
	elapsed := time.Since(start)

	return CompletionResponse{
		ID:          req.ID,
		Suggestions: rankSuggestions(suggestions),
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	}, nil
}

func (s *Server) sendError(id string, err error) error {
	code := 400
	if errors.Is(err, ErrUnknownAction) {
		code = 404
	}
	if encErr := s.encoder.Encode(CompletionError{ID: id, Error: err.Error(), Code: code}); encErr != nil {
		return fmt.Errorf("failed to write error response: %w", encErr)
	}
	return nil
}

// rankSuggestions attaches competition ranks to already ranked suggestions.
func rankSuggestions(suggestions []suggest.Suggestion) []CompletionSuggestion {
	freqs := make([]int, len(suggestions))
	for i, sg := range suggestions {
		freqs[i] = sg.Frequency
	}
	ranks := utils.CompetitionRanks(freqs)

	result := make([]CompletionSuggestion, len(suggestions))
	for i, sg := range suggestions {
		result[i] = CompletionSuggestion{Word: sg.Word, Frequency: sg.Frequency, Rank: ranks[i]}
	}
	return result
}
