// File: reader.go
// Title: Line Reader
// Description: Reads newline terminated lines from an io.Reader into owned
//              String values. Bytes are collected in a fixed chunk and
//              spilled into a str.Builder when the chunk is full.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-19
// Modified: 2026-09-19
//
// Change History:
// - 2026-09-19 v0.2.0: Initial implementation

package lineio

import (
	"bufio"
	"errors"
	"io"
	"iter"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/text/str"
)

// DefaultChunkSize is the size of the line chunk buffer
const DefaultChunkSize = 64

// Reader reads lines. It is not safe for concurrent use.
type Reader struct {
	r      *bufio.Reader
	chunk  str.String
	trimCR bool
	err    error
	line   int
}

// Option configures a Reader.
type Option func(*Reader)

// WithChunkSize sets the chunk size. Values below 1 keep the default.
func WithChunkSize(n int) Option {
	return func(r *Reader) {
		if n > 0 {
			r.chunk = str.Repeat(0, n)
		}
	}
}

// WithTrimCR strips one carriage return before the newline.
func WithTrimCR(trim bool) Option {
	return func(r *Reader) {
		r.trimCR = trim
	}
}

// NewReader returns a line reader over rd.
func NewReader(rd io.Reader, opts ...Option) *Reader {
	r := &Reader{r: bufio.NewReader(rd)}
	for _, opt := range opts {
		opt(r)
	}
	if r.chunk.IsEmpty() {
		r.chunk = str.Repeat(0, DefaultChunkSize)
	}
	return r
}

// ReadLine returns the next line without its newline. A last line without
// newline is returned with a nil error; the call after it returns io.EOF.
// Read errors other than io.EOF are returned as IO_FAILURE errors and stick.
func (r *Reader) ReadLine() (str.String, error) {
	if r.err != nil {
		return str.Empty, r.err
	}

	var b str.Builder
	buf := r.chunk.MutableBytes()
	n := 0
	read := false

	for {
		c, err := r.r.ReadByte()
		if errors.Is(err, io.EOF) {
			r.err = io.EOF
			if !read {
				return str.Empty, io.EOF
			}
			break
		}
		if err != nil {
			r.err = mdwerrors.IOFailure(mdwerrors.ModuleLineio, "ReadLine", err)
			return str.Empty, r.err
		}
		read = true
		if c == '\n' {
			break
		}
		if n == len(buf) {
			b.Append(r.chunk.Clone())
			n = 0
		}
		buf[n] = c
		n++
	}

	b.AppendBytes(buf[:n])
	line := b.Build()
	r.line++

	if r.trimCR && line.HasSuffix(str.ViewString("\r")) {
		line = line.SubString(0, line.Len()-1)
	}
	return line, nil
}

// Lines iterates over the remaining lines. Check Err afterwards.
func (r *Reader) Lines() iter.Seq[str.String] {
	return func(yield func(str.String) bool) {
		for {
			line, err := r.ReadLine()
			if err != nil {
				return
			}
			if !yield(line) {
				return
			}
		}
	}
}

// Err returns the first error other than io.EOF.
func (r *Reader) Err() error {
	if errors.Is(r.err, io.EOF) {
		return nil
	}
	return r.err
}

// LineNumber returns the number of lines read so far.
func (r *Reader) LineNumber() int {
	return r.line
}
