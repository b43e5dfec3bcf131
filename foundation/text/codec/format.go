// File: format.go
// Title: Encoding Formats and Byte Order Marks
// Description: Names the byte level encodings the Transcoder converts
//              between and sniffs byte order marks.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-18
// Modified: 2026-09-18
//
// Change History:
// - 2026-09-18 v0.2.0: Initial implementation

package codec

import (
	"bytes"
	"strings"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
)

// Format is a byte level text encoding.
type Format int

const (
	FormatUTF8 Format = iota
	FormatUTF16LE
	FormatUTF16BE
	FormatUTF32LE
	FormatUTF32BE
)

// AllFormats lists every supported format.
var AllFormats = []Format{FormatUTF8, FormatUTF16LE, FormatUTF16BE, FormatUTF32LE, FormatUTF32BE}

// String returns the conventional name of the format
func (f Format) String() string {
	switch f {
	case FormatUTF8:
		return "UTF-8"
	case FormatUTF16LE:
		return "UTF-16LE"
	case FormatUTF16BE:
		return "UTF-16BE"
	case FormatUTF32LE:
		return "UTF-32LE"
	case FormatUTF32BE:
		return "UTF-32BE"
	default:
		return "unknown"
	}
}

// UnitSize returns the code unit width in bytes.
func (f Format) UnitSize() int {
	switch f {
	case FormatUTF16LE, FormatUTF16BE:
		return 2
	case FormatUTF32LE, FormatUTF32BE:
		return 4
	default:
		return 1
	}
}

// Order returns the byte order of the units. UTF-8 reports HostEndian.
func (f Format) Order() ByteOrder {
	switch f {
	case FormatUTF16LE, FormatUTF32LE:
		return LittleEndian
	case FormatUTF16BE, FormatUTF32BE:
		return BigEndian
	default:
		return HostEndian
	}
}

var boms = map[Format][]byte{
	FormatUTF8:    {0xEF, 0xBB, 0xBF},
	FormatUTF16LE: {0xFF, 0xFE},
	FormatUTF16BE: {0xFE, 0xFF},
	FormatUTF32LE: {0xFF, 0xFE, 0x00, 0x00},
	FormatUTF32BE: {0x00, 0x00, 0xFE, 0xFF},
}

// BOM returns the byte order mark of the format.
func (f Format) BOM() []byte {
	return boms[f]
}

// ParseFormat parses names such as "utf8", "UTF-16LE" or "utf_32be". A bare
// "utf16" or "utf32" selects the host byte order.
func ParseFormat(s string) (Format, error) {
	name := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch name {
	case "utf8":
		return FormatUTF8, nil
	case "utf16le":
		return FormatUTF16LE, nil
	case "utf16be":
		return FormatUTF16BE, nil
	case "utf16":
		if HostOrder() == BigEndian {
			return FormatUTF16BE, nil
		}
		return FormatUTF16LE, nil
	case "utf32le":
		return FormatUTF32LE, nil
	case "utf32be":
		return FormatUTF32BE, nil
	case "utf32":
		if HostOrder() == BigEndian {
			return FormatUTF32BE, nil
		}
		return FormatUTF32LE, nil
	default:
		return FormatUTF8, mdwerrors.InvalidInput(mdwerrors.ModuleCodec, "ParseFormat", s, "utf8, utf16le, utf16be, utf32le or utf32be")
	}
}

// DetectFormat inspects the byte order mark at the start of b and returns
// the format with the length of the mark. Without a mark it returns
// (FormatUTF8, 0).
func DetectFormat(b []byte) (Format, int) {
	// UTF-32LE must be tested before its UTF-16LE prefix
	for _, f := range []Format{FormatUTF32LE, FormatUTF32BE, FormatUTF8, FormatUTF16LE, FormatUTF16BE} {
		if bom := boms[f]; bytes.HasPrefix(b, bom) {
			return f, len(bom)
		}
	}
	return FormatUTF8, 0
}
