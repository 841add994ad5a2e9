// Package cli handles cmd line input for exercising the trie interactively
package cli

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/wordtrie/internal/logger"
	"github.com/bastiangx/wordtrie/internal/utils"
	"github.com/bastiangx/wordtrie/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/google/shlex"
)

const helpText = `commands:
  add <word> [freq]     insert a word (quote words with spaces)
  del <word>            delete a word
  has <word>            exact lookup with frequency
  count <prefix>        number of words sharing a prefix
  top <prefix> [limit]  ranked completions
  stats                 dictionary statistics
  help                  this text
  quit                  leave
anything else is completed as a prefix`

// InputHandler reads commands line by line and runs them against a completer.
type InputHandler struct {
	completer    suggest.ICompleter
	suggestLimit int
	noFilter     bool
	in           io.Reader
	render       renderer
	logger       *log.Logger
}

// NewInputHandler handles initialization of the InputHandler with basic parameters.
// Errors go to l, or to a "cli" prefixed default logger when l is nil.
func NewInputHandler(completer suggest.ICompleter, limit int, noFilter bool, in io.Reader, out io.Writer, color bool, l *log.Logger) *InputHandler {
	if l == nil {
		l = logger.New("cli")
	}
	return &InputHandler{
		completer:    completer,
		suggestLimit: limit,
		noFilter:     noFilter,
		in:           in,
		render:       renderer{out: out, color: color},
		logger:       l,
	}
}

// Start runs the loop until input ends or the user quits.
func (h *InputHandler) Start() error {
	h.render.line("wordtrie CLI (type 'help' for commands, Ctrl+C to exit)")
	scanner := bufio.NewScanner(h.in)

	for {
		h.render.line("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !h.handleInput(line) {
			return nil
		}
	}
}

// handleInput runs one line and reports whether the loop should continue.
func (h *InputHandler) handleInput(line string) bool {
	args, err := shlex.Split(line)
	if err != nil || len(args) == 0 {
		h.logger.Errorf("Could not parse input: %v", err)
		return true
	}

	cmd, rest := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "quit", "exit":
		return false
	case "help":
		h.render.line("%s", helpText)
	case "add", "insert":
		h.add(rest)
	case "del", "delete":
		if !h.requireArgs(cmd, rest, 1) {
			return true
		}
		if h.completer.RemoveWord(rest[0]) {
			h.render.line("deleted '%s'", rest[0])
		} else {
			h.render.empty("'%s' is not in the dictionary", rest[0])
		}
	case "has", "search":
		if !h.requireArgs(cmd, rest, 1) {
			return true
		}
		if freq, ok := h.completer.Frequency(rest[0]); ok {
			h.render.line("'%s' found (freq: %s)", rest[0], utils.FormatWithCommas(freq))
		} else {
			h.render.empty("'%s' not found", rest[0])
		}
	case "count":
		prefix := ""
		if len(rest) > 0 {
			prefix = rest[0]
		}
		h.render.line("%d words start with '%s'", h.completer.Count(prefix), prefix)
	case "top", "complete":
		if !h.requireArgs(cmd, rest, 1) {
			return true
		}
		limit := h.suggestLimit
		if len(rest) > 1 {
			n, err := strconv.Atoi(rest[1])
			if err != nil || n < 1 {
				h.logger.Errorf("Invalid limit: %s", rest[1])
				return true
			}
			limit = n
		}
		h.complete(rest[0], limit)
	case "stats":
		h.stats()
	default:
		h.complete(line, h.suggestLimit)
	}
	return true
}

func (h *InputHandler) requireArgs(cmd string, args []string, n int) bool {
	if len(args) < n {
		h.logger.Errorf("'%s' needs %d argument(s), see 'help'", cmd, n)
		return false
	}
	return true
}

func (h *InputHandler) add(args []string) {
	if !h.requireArgs("add", args, 1) {
		return
	}
	freq := 1
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			h.logger.Errorf("Invalid frequency: %s", args[1])
			return
		}
		freq = n
	}
	h.completer.AddWord(args[0], freq)
	total, _ := h.completer.Frequency(args[0])
	h.render.line("added '%s' (freq: %s)", args[0], utils.FormatWithCommas(total))
}

func (h *InputHandler) complete(prefix string, limit int) {
	if !h.noFilter && !utils.IsValidInput(prefix) {
		h.render.empty("No suggestions for '%s'", prefix)
		return
	}

	start := time.Now()
	suggestions := h.completer.Complete(prefix, limit)
	h.logger.Debugf("Took [ %v ] for prefix '%s'", time.Since(start), prefix)

	h.render.suggestions(prefix, suggestions)
}

func (h *InputHandler) stats() {
	stats := h.completer.Stats()
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		h.render.line("%-16s %s", k, utils.FormatWithCommas(stats[k]))
	}
}
