package stringx_test

import (
	"fmt"

	"github.com/msto63/textkit/foundation/text/str"
	mdwstringx "github.com/msto63/textkit/foundation/utils/stringx"
)

func ExampleTruncate() {
	s := str.ViewString("The quick brown fox")
	fmt.Println(mdwstringx.Truncate(s, 10, str.ViewString("...")))
	fmt.Println(mdwstringx.Truncate(str.ViewString("こんにちは世界"), 4, str.ViewString("…")))
	// Output:
	// The qui...
	// こんに…
}

func ExampleRuneCount() {
	s := str.ViewString("hello, 世界")
	fmt.Println(s.Len(), mdwstringx.RuneCount(s), mdwstringx.Width(s))
	// Output: 13 9 11
}

func ExamplePadLeft() {
	fmt.Println(mdwstringx.PadLeft(str.ViewString("42"), 6, '0'))
	fmt.Println(mdwstringx.PadRight(str.ViewString("id"), 6, '.'))
	// Output:
	// 000042
	// id....
}

func ExampleToSnakeCase() {
	fmt.Println(mdwstringx.ToSnakeCase(str.ViewString("BufferSizeLimit")))
	fmt.Println(mdwstringx.ToKebabCase(str.ViewString("BufferSizeLimit")))
	// Output:
	// buffer_size_limit
	// buffer-size-limit
}

func ExampleJoin() {
	parts := str.ViewString("a,b,,c").Split(',', true)
	fmt.Println(mdwstringx.Join(parts, str.ViewString(" | ")))
	// Output: a | b | c
}
