package dictionary

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// FileFormat represents different dictionary file formats
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // UTF-8 text, one entry per line
	FormatLatin1             // ISO-8859-1 text, one entry per line
	FormatBinary             // msgpack array of entries
)

// ErrUnknownFormat is returned when a file's format cannot be determined.
var ErrUnknownFormat = errors.New("unknown dictionary format")

// FormatInfo contains metadata about a dictionary file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Dictionary",
		Extensions:  []string{".txt", ".dict", ""},
	},
	FormatLatin1: {
		Format:      FormatLatin1,
		Description: "Latin-1 Text Dictionary",
		Extensions:  []string{".txt", ".dict", ""},
	},
	FormatBinary: {
		Format:      FormatBinary,
		Description: "MessagePack Dictionary",
		Extensions:  []string{".msgpack", ".mpk", ".bin"},
	},
}

func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return "Unknown"
}

// DetectFileFormat picks a format from the file extension. encoding only
// matters for text files: "latin1" and "iso-8859-1" select FormatLatin1.
func DetectFileFormat(filename, encoding string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	for _, validExtension := range supportedFormats[FormatBinary].Extensions {
		if ext == validExtension {
			return FormatBinary, nil
		}
	}

	for _, validExtension := range supportedFormats[FormatText].Extensions {
		if ext != validExtension {
			continue
		}
		switch strings.ToLower(encoding) {
		case "", "utf-8", "utf8":
			return FormatText, nil
		case "latin1", "latin-1", "iso-8859-1":
			return FormatLatin1, nil
		default:
			return FormatUnknown, fmt.Errorf("%w: unsupported encoding %q", ErrUnknownFormat, encoding)
		}
	}

	return FormatUnknown, fmt.Errorf("%w: %s", ErrUnknownFormat, filename)
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}

// ListSupportedFormats returns all supported formats
func ListSupportedFormats() []FormatInfo {
	formats := make([]FormatInfo, 0, len(supportedFormats))
	for _, info := range supportedFormats {
		formats = append(formats, info)
	}
	sort.Slice(formats, func(i, j int) bool {
		return formats[i].Format < formats[j].Format
	})
	return formats
}
