// Package prettyprint turns a single-line rendering of a nested structure,
// such as "Foo(Bar(Baz()), Baq())", into a width-bounded, indented
// multi-line rendering. It knows nothing about the structure's real
// grammar: nesting is inferred purely from parentheses, brackets, braces
// and commas, and quoted substrings ("…", '…' with backslash escaping, or
// `…` without) are opaque to structural scanning.
//
// Formatting is all or nothing. Input that does not parse (unbalanced
// delimiters, for instance) is returned unchanged rather than repaired,
// so the package is safe to point at arbitrary log output.
//
// Basic usage:
//
//	fmt.Println(prettyprint.Format("Foo(Bar(Baz()), Baq())", 16))
//	// Foo(
//	//     Bar(Baz()),
//	//     Baq()
//	// )
//
// Streaming, one structure per line:
//
//	opts := &prettyprint.Options{Width: 100}
//	if err := prettyprint.FormatStream(os.Stdout, os.Stdin, opts); err != nil {
//		log.Fatal(err)
//	}
//
// All entry points are pure functions of their inputs and safe for
// concurrent use; state lives on the call stack for the duration of a
// single call.
package prettyprint
