// File: builder.go
// Title: String Builder
// Description: Accumulates appended pieces and materializes them into one
//              owned String. Small pieces are copied into a pending buffer,
//              large ones are kept by reference until Build.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-17
// Modified: 2026-09-17
//
// Change History:
// - 2026-09-17 v0.2.0: Initial implementation

package str

import (
	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
)

// DefaultBufferSize is the pending buffer capacity of a zero Builder.
const DefaultBufferSize = 128

// MinBufferSize is the smallest pending buffer NewBuilderSize accepts.
const MinBufferSize = 8

// Builder concatenates strings. The zero value is ready to use.
//
// Pieces of at least a quarter of the buffer size are stored by reference:
// the bytes behind AppendBytes, Append and AppendValue must not change until
// Build returns. Write always copies.
type Builder struct {
	sections   []String
	pending    String
	pendingLen int
	total      int
	bufferSize int
}

// NewBuilder returns a builder with DefaultBufferSize.
func NewBuilder() *Builder {
	return &Builder{bufferSize: DefaultBufferSize}
}

// NewBuilderSize returns a builder whose pending buffer holds size bytes.
func NewBuilderSize(size int) *Builder {
	if size < MinBufferSize {
		panic(mdwerrors.InvalidArgument(mdwerrors.ModuleStr, "NewBuilderSize", "size", size, ">= 8"))
	}
	return &Builder{bufferSize: size}
}

func (b *Builder) size() int {
	if b.bufferSize == 0 {
		return DefaultBufferSize
	}
	return b.bufferSize
}

// Len returns the number of bytes appended so far.
func (b *Builder) Len() int { return b.total }

func (b *Builder) grow(op string, n int) {
	if n > MaxLength-b.total {
		panic(mdwerrors.LengthExceeded(mdwerrors.ModuleStr, op, b.total+n, MaxLength))
	}
}

func (b *Builder) flush() {
	if b.pendingLen == 0 {
		return
	}
	b.sections = append(b.sections, OwnedFrom(b.pending.data[:b.pendingLen]))
	b.pendingLen = 0
}

func (b *Builder) copyPending(p []byte) {
	if b.pendingLen+len(p) > b.size() {
		b.flush()
	}
	if b.pending.IsEmpty() {
		b.pending = MakeOwned(b.size())
	}
	b.pendingLen += copy(b.pending.data[b.pendingLen:], p)
}

func (b *Builder) appendBytes(op string, p []byte, retain bool) {
	if len(p) == 0 {
		return
	}
	b.grow(op, len(p))
	switch {
	case len(p) < b.size()/4:
		b.copyPending(p)
	case retain:
		b.flush()
		b.sections = append(b.sections, View(p))
	default:
		b.flush()
		b.sections = append(b.sections, OwnedFrom(p))
	}
	b.total += len(p)
}

// Append appends s.
func (b *Builder) Append(s String) {
	b.appendBytes("Append", s.data, true)
}

// AppendBytes appends p.
func (b *Builder) AppendBytes(p []byte) {
	b.appendBytes("AppendBytes", p, true)
}

// AppendText appends the bytes of t.
func (b *Builder) AppendText(t string) {
	b.Append(ViewString(t))
}

// AppendByte appends a single byte.
func (b *Builder) AppendByte(c byte) {
	b.grow("AppendByte", 1)
	if b.pendingLen == b.size() {
		b.flush()
	}
	if b.pending.IsEmpty() {
		b.pending = MakeOwned(b.size())
	}
	b.pending.data[b.pendingLen] = c
	b.pendingLen++
	b.total++
}

// AppendValue appends the String form of v.
func (b *Builder) AppendValue(v ToStringer) {
	b.Append(v.ToString())
}

// AppendLine appends s and a newline.
func (b *Builder) AppendLine(s String) {
	b.Append(s)
	b.AppendByte('\n')
}

// AppendTextLine appends t and a newline.
func (b *Builder) AppendTextLine(t string) {
	b.AppendText(t)
	b.AppendByte('\n')
}

// AppendValueLine appends the String form of v and a newline.
func (b *Builder) AppendValueLine(v ToStringer) {
	b.AppendValue(v)
	b.AppendByte('\n')
}

// Build returns one owned String holding everything appended, in append
// order. An empty builder returns Empty without allocating. The builder is
// left unchanged.
func (b *Builder) Build() String {
	if b.total == 0 {
		return Empty
	}
	out := MakeOwned(b.total)
	pos := 0
	for _, s := range b.sections {
		pos += copy(out.data[pos:], s.data)
	}
	copy(out.data[pos:], b.pending.data[:b.pendingLen])
	return out
}

// Reset discards the content. The pending buffer is kept.
func (b *Builder) Reset() {
	clear(b.sections)
	b.sections = b.sections[:0]
	b.pendingLen = 0
	b.total = 0
}

// Write appends a copy of p. It implements io.Writer and never fails.
func (b *Builder) Write(p []byte) (int, error) {
	b.appendBytes("Write", p, false)
	return len(p), nil
}

// WriteString appends t. It implements io.StringWriter.
func (b *Builder) WriteString(t string) (int, error) {
	b.AppendText(t)
	return len(t), nil
}

// WriteByte appends c. It implements io.ByteWriter.
func (b *Builder) WriteByte(c byte) error {
	b.AppendByte(c)
	return nil
}

// TryPush appends c unless the builder is full, making a Builder a byte sink
// for the codec package.
func (b *Builder) TryPush(c byte) bool {
	if b.total == MaxLength {
		return false
	}
	b.AppendByte(c)
	return true
}
