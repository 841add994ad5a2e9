package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bastiangx/wordtrie/internal/utils"
	"github.com/bastiangx/wordtrie/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	wordStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	freqStyle  = lipgloss.NewStyle().Faint(true)
	emptyStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("244"))
)

// ColorEnabled reports whether colour output should be used: the config
// must allow it and stdout must be a terminal.
func ColorEnabled(want bool) bool {
	if !want {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// renderer writes REPL output, styled or plain.
type renderer struct {
	out   io.Writer
	color bool
}

func (r renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

func (r renderer) line(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r renderer) empty(format string, args ...any) {
	r.line("%s", r.style(emptyStyle, fmt.Sprintf(format, args...)))
}

func (r renderer) suggestions(prefix string, suggestions []suggest.Suggestion) {
	if len(suggestions) == 0 {
		r.empty("No suggestions for '%s'", prefix)
		return
	}

	width := 0
	for _, s := range suggestions {
		width = max(width, len([]rune(s.Word)))
	}

	r.line("Found %d suggestions for '%s':", len(suggestions), prefix)
	for i, s := range suggestions {
		pad := strings.Repeat(" ", width-len([]rune(s.Word)))
		freq := r.style(freqStyle, fmt.Sprintf("(freq: %s)", utils.FormatWithCommas(s.Frequency)))
		r.line("%2d. %s%s  %s", i+1, r.style(wordStyle, s.Word), pad, freq)
	}
}
