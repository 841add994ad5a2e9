/*
Package dictionary reads word lists into a trie and writes them back out.

Text dictionaries hold one entry per line, a word optionally followed by its
frequency:

	# comment
	program 100
	programming 120
	project

Binary dictionaries are a msgpack array of {"w": word, "f": frequency} maps,
the same shape WriteBinary produces.
*/
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bastiangx/wordtrie/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/text/encoding/charmap"
)

// Entry is a word and its frequency.
type Entry struct {
	Word      string `msgpack:"w"`
	Frequency int    `msgpack:"f"`
}

// ReadText parses a UTF-8 text dictionary.
func ReadText(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		entry := Entry{Word: fields[0], Frequency: 1}
		switch len(fields) {
		case 1:
		case 2:
			freq, err := strconv.Atoi(fields[1])
			if err != nil || freq < 1 {
				return nil, fmt.Errorf("line %d: invalid frequency %q", lineNo, fields[1])
			}
			entry.Frequency = freq
		default:
			return nil, fmt.Errorf("line %d: expected 'word [frequency]', got %d fields", lineNo, len(fields))
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}
	return entries, nil
}

// ReadLatin1 parses an ISO-8859-1 encoded text dictionary.
func ReadLatin1(r io.Reader) ([]Entry, error) {
	return ReadText(charmap.ISO8859_1.NewDecoder().Reader(r))
}

// ReadBinary decodes a msgpack dictionary.
func ReadBinary(r io.Reader) ([]Entry, error) {
	var entries []Entry
	if err := msgpack.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode binary dictionary: %w", err)
	}
	return entries, nil
}

// Read parses r according to format.
func Read(r io.Reader, format FileFormat) ([]Entry, error) {
	switch format {
	case FormatText:
		return ReadText(r)
	case FormatLatin1:
		return ReadLatin1(r)
	case FormatBinary:
		return ReadBinary(r)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
}

// LoadFile reads a dictionary file, detecting its format from the extension.
func LoadFile(path, encoding string) ([]Entry, error) {
	format, err := DetectFileFormat(path, encoding)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer file.Close()

	entries, err := Read(bufio.NewReader(file), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debugf("Read %d entries from %s (%s)", len(entries), path, format)
	return entries, nil
}

// Fill inserts entries into t and returns how many were inserted.
// Entries with an empty word are skipped.
func Fill(t *trie.Trie, entries []Entry) int {
	n := 0
	for _, e := range entries {
		if e.Word == "" {
			continue
		}
		t.Insert(e.Word, e.Frequency)
		n++
	}
	return n
}

// Collect returns every word in t, sorted alphabetically. The empty word is
// left out, matching Fill, so a written dictionary reloads to the same words.
func Collect(t *trie.Trie) []Entry {
	entries := make([]Entry, 0, t.Len())
	_ = t.Walk("", func(word string, freq int) error {
		if word == "" {
			return nil
		}
		entries = append(entries, Entry{Word: word, Frequency: freq})
		return nil
	})
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Word < entries[j].Word
	})
	return entries
}

// WriteBinary encodes every word in t as a msgpack dictionary.
func WriteBinary(w io.Writer, t *trie.Trie) error {
	if err := msgpack.NewEncoder(w).Encode(Collect(t)); err != nil {
		return fmt.Errorf("failed to encode binary dictionary: %w", err)
	}
	return nil
}

// DumpFile writes t to path in the binary format. The path must carry one
// of the binary extensions so LoadFile reads it back as msgpack.
func DumpFile(path string, t *trie.Trie) error {
	if format, err := DetectFileFormat(path, ""); err != nil || format != FormatBinary {
		info, _ := GetFormatInfo(FormatBinary)
		return fmt.Errorf("%w: %s needs one of %s", ErrUnknownFormat, path, strings.Join(info.Extensions, ", "))
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	bw := bufio.NewWriter(file)
	if err := WriteBinary(bw, t); err != nil {
		file.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}
