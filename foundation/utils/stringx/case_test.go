// File: case_test.go
// Title: Unit Tests for Case Conversion
// Description: Tests for ASCII case mapping, snake_case, kebab-case and
//              title casing.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-09-20
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-09-20 v0.2.0: Tests on str.String values

package stringx

import (
	"testing"

	"github.com/msto63/textkit/foundation/text/str"
)

func TestASCIICase(t *testing.T) {
	tests := []struct {
		input string
		upper string
		lower string
	}{
		{"", "", ""},
		{"Hello, World!", "HELLO, WORLD!", "hello, world!"},
		{"größe", "GRößE", "größe"},
		{"123", "123", "123"},
	}

	for _, tt := range tests {
		if got := ToUpperASCII(v(tt.input)); !got.EqualString(tt.upper) {
			t.Errorf("ToUpperASCII(%q) = %q; want %q", tt.input, got, tt.upper)
		}
		if got := ToLowerASCII(v(tt.input)); !got.EqualString(tt.lower) {
			t.Errorf("ToLowerASCII(%q) = %q; want %q", tt.input, got, tt.lower)
		}
	}
}

func TestASCIICaseDoesNotMutateInput(t *testing.T) {
	src := str.OwnedFromString("abc")
	up := ToUpperASCII(src)
	if !src.EqualString("abc") || !up.EqualString("ABC") {
		t.Errorf("src=%q up=%q", src, up)
	}

	lower := v("already lower")
	if got := ToLowerASCII(lower); got.IsOwned() {
		t.Error("unchanged input should be returned as is")
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"MyVariableName", "my_variable_name"},
		{"myVariableName", "my_variable_name"},
		{"already_snake", "already_snake"},
		{"kebab-case-name", "kebab_case_name"},
		{"Hello World", "hello_world"},
		{"double  space", "double_space"},
		{"HTTPServer", "httpserver"},
	}

	for _, tt := range tests {
		if got := ToSnakeCase(v(tt.input)); !got.EqualString(tt.expected) {
			t.Errorf("ToSnakeCase(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

func TestToKebabCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"MyVariableName", "my-variable-name"},
		{"snake_case_name", "snake-case-name"},
		{"Hello World", "hello-world"},
		{"already-kebab", "already-kebab"},
	}

	for _, tt := range tests {
		if got := ToKebabCase(v(tt.input)); !got.EqualString(tt.expected) {
			t.Errorf("ToKebabCase(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

func TestToTitle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"hello world", "Hello World"},
		{"HELLO WORLD", "Hello World"},
		{"élan vital", "Élan Vital"},
	}

	for _, tt := range tests {
		if got := ToTitle(v(tt.input)); !got.EqualString(tt.expected) {
			t.Errorf("ToTitle(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}
