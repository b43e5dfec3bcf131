// File: benchmark_test.go
// Title: Performance Benchmarks for StringX Functions
// Description: Benchmarks for the code point helpers and case conversion.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-09-20
//
// Change History:
// - 2025-01-24 v0.1.0: Initial benchmark implementation
// - 2026-09-20 v0.2.0: Benchmarks on str.String values

package stringx

import (
	"testing"

	"github.com/msto63/textkit/foundation/text/str"
)

func BenchmarkIsBlank(b *testing.B) {
	testStrings := []str.String{v(""), v("   "), v("hello"), v("  hello  ")}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = IsBlank(testStrings[i%len(testStrings)])
	}
}

func BenchmarkRuneCount(b *testing.B) {
	text := v("これは日本語のテキストで、ベンチマークテストで使われます")
	b.SetBytes(int64(text.Len()))
	for i := 0; i < b.N; i++ {
		_ = RuneCount(text)
	}
}

func BenchmarkTruncate(b *testing.B) {
	text := v("This is a longer text that will be truncated in the benchmark test")
	ellipsis := v("...")
	for i := 0; i < b.N; i++ {
		_ = Truncate(text, 20, ellipsis)
	}
}

func BenchmarkReverse(b *testing.B) {
	text := v("hello world this is a test string")
	for i := 0; i < b.N; i++ {
		_ = Reverse(text)
	}
}

func BenchmarkPadLeft(b *testing.B) {
	text := v("42")
	for i := 0; i < b.N; i++ {
		_ = PadLeft(text, 16, '0')
	}
}

func BenchmarkToSnakeCase(b *testing.B) {
	text := v("MyVeryLongVariableNameForTesting")
	for i := 0; i < b.N; i++ {
		_ = ToSnakeCase(text)
	}
}

func BenchmarkIntern(b *testing.B) {
	keys := []str.String{v("debug"), v("info"), v("warn"), v("error")}
	for i := 0; i < b.N; i++ {
		_ = Intern(keys[i%len(keys)])
	}
}
