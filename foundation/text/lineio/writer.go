// File: writer.go
// Title: String Output
// Description: Writes String values to an io.Writer.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-19
// Modified: 2026-09-19
//
// Change History:
// - 2026-09-19 v0.2.0: Initial implementation

package lineio

import (
	"io"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/text/str"
)

// WriteString writes the bytes of s to w.
func WriteString(w io.Writer, s str.String) (int, error) {
	if s.IsEmpty() {
		return 0, nil
	}
	n, err := w.Write(s.Bytes())
	if err != nil {
		return n, mdwerrors.IOFailure(mdwerrors.ModuleLineio, "WriteString", err)
	}
	return n, nil
}

// WriteLine writes s followed by a newline.
func WriteLine(w io.Writer, s str.String) (int, error) {
	n, err := WriteString(w, s)
	if err != nil {
		return n, err
	}
	m, err := WriteString(w, str.ViewString("\n"))
	return n + m, err
}
