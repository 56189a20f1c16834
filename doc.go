// Package tint is a runtime-configurable ANSI text-styling engine. A
// Style is a plain value built by chaining mutators:
//
//	warn := tint.New().BrightYellow().Bold()
//	fmt.Println(warn.Apply("careful"))
//
// Rendering wraps the value's own textual form in a single SGR escape
// sequence and a full reset; a zero Style is fully transparent and emits
// no escape bytes at all. The package only produces text — it never
// detects terminal capabilities or owns any I/O.
package tint
