package dictionary

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bastiangx/wordtrie/pkg/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadText(t *testing.T) {
	input := `# frequencies from the autocomplete demo
program 100
programming   120

project
`
	entries, err := ReadText(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Word: "program", Frequency: 100},
		{Word: "programming", Frequency: 120},
		{Word: "project", Frequency: 1},
	}, entries)
}

func TestReadTextErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"cat x\n", "line 1: invalid frequency"},
		{"cat 1\ndog 0\n", "line 2: invalid frequency"},
		{"cat 1 2\n", "line 1: expected"},
	}
	for _, tc := range tests {
		_, err := ReadText(strings.NewReader(tc.input))
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Errorf("ReadText(%q) error = %v, want containing %q", tc.input, err, tc.want)
		}
	}
}

func TestReadLatin1(t *testing.T) {
	// "café 3" in ISO-8859-1: é is the single byte 0xE9.
	input := []byte{'c', 'a', 'f', 0xE9, ' ', '3', '\n'}
	entries, err := ReadLatin1(bytes.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Word: "café", Frequency: 3}}, entries)
}

func TestBinaryRoundTrip(t *testing.T) {
	src := trie.New()
	src.Insert("program", 100)
	src.Insert("Project", 90)
	src.Insert("new york", 4)

	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, src))

	entries, err := ReadBinary(&buf)
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Word: "new york", Frequency: 4},
		{Word: "program", Frequency: 100},
		{Word: "project", Frequency: 90},
	}, entries)
}

func TestFillSkipsEmptyWords(t *testing.T) {
	tr := trie.New()
	n := Fill(tr, []Entry{{Word: "cat", Frequency: 2}, {Word: ""}, {Word: "cat", Frequency: 3}})
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, tr.Len())
	freq, _ := tr.Frequency("cat")
	assert.Equal(t, 5, freq)
}

func TestDetectFileFormat(t *testing.T) {
	tests := []struct {
		file     string
		encoding string
		want     FileFormat
	}{
		{"words.txt", "", FormatText},
		{"words.TXT", "utf-8", FormatText},
		{"words", "", FormatText},
		{"words.txt", "latin1", FormatLatin1},
		{"words.dict", "ISO-8859-1", FormatLatin1},
		{"words.msgpack", "latin1", FormatBinary},
		{"words.bin", "", FormatBinary},
	}
	for _, tc := range tests {
		got, err := DetectFileFormat(tc.file, tc.encoding)
		if err != nil {
			t.Errorf("DetectFileFormat(%q, %q) error: %v", tc.file, tc.encoding, err)
			continue
		}
		if got != tc.want {
			t.Errorf("DetectFileFormat(%q, %q) = %v, want %v", tc.file, tc.encoding, got, tc.want)
		}
	}

	_, err := DetectFileFormat("words.csv", "")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
	_, err = DetectFileFormat("words.txt", "utf-16")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestLoadAndDumpFile(t *testing.T) {
	dir := t.TempDir()
	textPath := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(textPath, []byte("cat 2\ncar 5\ncard\n"), 0644))

	entries, err := LoadFile(textPath, "")
	require.NoError(t, err)
	tr := trie.New()
	Fill(tr, entries)
	assert.Equal(t, 3, tr.PrefixCount("ca"))

	binPath := filepath.Join(dir, "words.msgpack")
	require.NoError(t, DumpFile(binPath, tr))

	reloaded, err := LoadFile(binPath, "")
	require.NoError(t, err)
	assert.Equal(t, Collect(tr), reloaded)

	_, err = LoadFile(filepath.Join(dir, "missing.txt"), "")
	assert.Error(t, err)

	err = DumpFile(filepath.Join(dir, "words.out.txt"), tr)
	assert.True(t, errors.Is(err, ErrUnknownFormat))
	assert.NoFileExists(t, filepath.Join(dir, "words.out.txt"))
}

func TestDumpSkipsEmptyWord(t *testing.T) {
	tr := trie.New()
	tr.Insert("", 3)
	tr.Insert("cat", 2)
	require.Equal(t, 2, tr.Len())

	path := filepath.Join(t.TempDir(), "words.msgpack")
	require.NoError(t, DumpFile(path, tr))

	entries, err := LoadFile(path, "")
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Word: "cat", Frequency: 2}}, entries)

	reloaded := trie.New()
	Fill(reloaded, entries)
	assert.Equal(t, Collect(tr), Collect(reloaded))
}

func TestListSupportedFormats(t *testing.T) {
	formats := ListSupportedFormats()
	require.Len(t, formats, 3)
	assert.Equal(t, FormatText, formats[0].Format)
	assert.Equal(t, FormatBinary, formats[2].Format)

	info, ok := GetFormatInfo(FormatLatin1)
	assert.True(t, ok)
	assert.Equal(t, "Latin-1 Text Dictionary", info.Description)
	assert.Equal(t, "Unknown", FormatUnknown.String())
}
