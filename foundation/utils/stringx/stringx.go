// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements helpers on String values that go beyond the byte
//              level operations of package str: code point counting,
//              truncation, reversal, padding, joining and interning. UTF-8
//              input is decoded with the replacement policy of package codec.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-09-20
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-09-20 v0.2.0: Operates on str.String, code point iteration via codec

package stringx

import (
	"iter"
	"sync"
	"unicode"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/text/codec"
	"github.com/msto63/textkit/foundation/text/conv"
	"github.com/msto63/textkit/foundation/text/str"
)

// MaxInternEntries bounds the intern cache
const MaxInternEntries = 1000

var (
	internCache = make(map[string]str.String)
	internMu    sync.RWMutex
)

// Intern returns the canonical owned copy of s. Equal inputs return values
// that share one buffer. The cache is bounded; when it is full half of it is
// dropped. Interned values must not be mutated.
func Intern(s str.String) str.String {
	if s.IsEmpty() {
		return str.Empty
	}

	internMu.RLock()
	if interned, exists := internCache[string(s.Bytes())]; exists {
		internMu.RUnlock()
		return interned
	}
	internMu.RUnlock()

	internMu.Lock()
	defer internMu.Unlock()
	key := s.String()
	if interned, exists := internCache[key]; exists {
		return interned
	}

	if len(internCache) >= MaxInternEntries {
		for k := range internCache {
			delete(internCache, k)
			if len(internCache) <= MaxInternEntries/2 {
				break
			}
		}
	}

	interned := str.OwnedFromString(key)
	internCache[key] = interned
	return interned
}

// Runes iterates over the code points of s with their byte offsets.
// Malformed sequences yield codec.RuneError.
func Runes(s str.String) iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		p := s.Bytes()
		for i := 0; i < len(p); {
			r, n := codec.DecodeRuneUTF8(p[i:])
			if !yield(i, r) {
				return
			}
			i += n
		}
	}
}

// RuneCount returns the number of code points in s
func RuneCount(s str.String) int {
	n := 0
	for range Runes(s) {
		n++
	}
	return n
}

// IsBlank returns true if s is empty or holds only Unicode white space.
func IsBlank(s str.String) bool {
	for _, r := range Runes(s) {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank is the inverse of IsBlank
func IsNotBlank(s str.String) bool {
	return !IsBlank(s)
}

// FirstNonBlank returns the first value that is not blank, or str.Empty.
func FirstNonBlank(values ...str.String) str.String {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return str.Empty
}

// prefixBytes returns the byte length of the first n code points of s.
func prefixBytes(s str.String, n int) int {
	count := 0
	for i := range Runes(s) {
		if count == n {
			return i
		}
		count++
	}
	return s.Len()
}

// Truncate shortens s to at most maxLen code points. When s is cut the
// ellipsis is appended and counts toward maxLen; an ellipsis that does not
// fit is dropped. A value that fits is returned unchanged.
func Truncate(s str.String, maxLen int, ellipsis str.String) str.String {
	if maxLen <= 0 {
		return str.Empty
	}
	if RuneCount(s) <= maxLen {
		return s
	}

	ellipsisLen := RuneCount(ellipsis)
	if ellipsisLen >= maxLen {
		return s.SubString(0, prefixBytes(s, maxLen))
	}

	var b str.Builder
	b.Append(s.SubString(0, prefixBytes(s, maxLen-ellipsisLen)))
	b.Append(ellipsis)
	return b.Build()
}

// Reverse reverses the code points of s. Bytes of a malformed sequence
// stay together.
func Reverse(s str.String) str.String {
	if s.Len() < 2 {
		return s
	}
	out := str.MakeOwned(s.Len())
	dst := out.MutableBytes()
	src := s.Bytes()
	end := len(dst)
	for i := 0; i < len(src); {
		_, n := codec.DecodeRuneUTF8(src[i:])
		end -= n
		copy(dst[end:], src[i:i+n])
		i += n
	}
	return out
}

func pad(s str.String, width int, r rune, left bool) str.String {
	count := RuneCount(s)
	if count >= width {
		return s
	}
	unit := codec.AppendUTF8(nil, r)

	var b str.Builder
	if !left {
		b.Append(s)
	}
	for i := count; i < width; i++ {
		b.AppendBytes(unit)
	}
	if left {
		b.Append(s)
	}
	return b.Build()
}

// PadLeft pads s on the left to width code points.
func PadLeft(s str.String, width int, r rune) str.String {
	return pad(s, width, r, true)
}

// PadRight pads s on the right to width code points.
func PadRight(s str.String, width int, r rune) str.String {
	return pad(s, width, r, false)
}

// Join concatenates parts with sep between them.
func Join(parts []str.String, sep str.String) str.String {
	switch len(parts) {
	case 0:
		return str.Empty
	case 1:
		return parts[0]
	}
	var b str.Builder
	for i, p := range parts {
		if i > 0 {
			b.Append(sep)
		}
		b.Append(p)
	}
	return b.Build()
}

// ValidateLength checks that s has between minLen and maxLen code points.
// A bound of zero or less is not checked.
func ValidateLength(s str.String, minLen, maxLen int) error {
	length := RuneCount(s)

	if minLen > 0 && length < minLen {
		return mdwerrors.InvalidInput(mdwerrors.ModuleStringx, "ValidateLength",
			length, "at least "+conv.FormatInt(int64(minLen), 10).String()+" code points")
	}
	if maxLen > 0 && length > maxLen {
		return mdwerrors.InvalidInput(mdwerrors.ModuleStringx, "ValidateLength",
			length, "at most "+conv.FormatInt(int64(maxLen), 10).String()+" code points")
	}
	return nil
}
