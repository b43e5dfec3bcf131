// File: policy.go
// Title: Error Policy and Byte Order
// Description: Defines how decoders resolve malformed input and the byte
//              order of multi-byte code units.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-18
// Modified: 2026-09-18
//
// Change History:
// - 2026-09-18 v0.2.0: Initial implementation

package codec

import (
	"encoding/binary"
	"strings"
	"unsafe"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
)

// Policy selects how a decoder resolves a malformed sequence. Each malformed
// sequence is resolved exactly once.
type Policy int

const (
	// PolicyReplace yields RuneError for the sequence
	PolicyReplace Policy = iota

	// PolicySkip drops the sequence and continues with the next unit
	PolicySkip

	// PolicyFail returns a MALFORMED_INPUT error
	PolicyFail
)

// String returns the name of the policy
func (p Policy) String() string {
	switch p {
	case PolicyReplace:
		return "replace"
	case PolicySkip:
		return "skip"
	case PolicyFail:
		return "fail"
	default:
		return "unknown"
	}
}

// ParsePolicy parses "replace", "skip" or "fail", ignoring case.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "replace":
		return PolicyReplace, nil
	case "skip":
		return PolicySkip, nil
	case "fail", "strict":
		return PolicyFail, nil
	default:
		return PolicyReplace, mdwerrors.InvalidInput(mdwerrors.ModuleCodec, "ParsePolicy", s, "replace, skip or fail")
	}
}

// ByteOrder is the order of bytes within a UTF-16 or UTF-32 code unit.
type ByteOrder int

const (
	// HostEndian is the order of the executing machine
	HostEndian ByteOrder = iota
	LittleEndian
	BigEndian
)

var hostOrder = func() ByteOrder {
	x := uint16(1)
	if *(*byte)(unsafe.Pointer(&x)) == 1 {
		return LittleEndian
	}
	return BigEndian
}()

// HostOrder returns LittleEndian or BigEndian for the executing machine.
func HostOrder() ByteOrder {
	return hostOrder
}

// Resolve maps HostEndian to the concrete host order.
func (o ByteOrder) Resolve() ByteOrder {
	if o == HostEndian {
		return hostOrder
	}
	return o
}

// String returns the name of the byte order
func (o ByteOrder) String() string {
	switch o {
	case HostEndian:
		return "host"
	case LittleEndian:
		return "le"
	case BigEndian:
		return "be"
	default:
		return "unknown"
	}
}

// swaps reports whether units stored in o must be swapped on this host.
func (o ByteOrder) swaps() bool {
	return o.Resolve() != hostOrder
}

func (o ByteOrder) binary() binary.ByteOrder {
	if o.Resolve() == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// ParseByteOrder parses "host", "le"/"little" or "be"/"big".
func ParseByteOrder(s string) (ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "host", "native":
		return HostEndian, nil
	case "le", "little", "little-endian":
		return LittleEndian, nil
	case "be", "big", "big-endian":
		return BigEndian, nil
	default:
		return HostEndian, mdwerrors.InvalidInput(mdwerrors.ModuleCodec, "ParseByteOrder", s, "host, le or be")
	}
}
