package core

// This file centralizes constants for the textual path format shared by the
// path model and its tokenizer.

const (
	// PathSeparator joins the nodes of a path in its canonical string form.
	PathSeparator = "."
	// PathSeparatorByte is the separator as a single byte, used when scanning.
	PathSeparatorByte = '.'

	// DoubleQuote and BackQuote open and close a quoted node, letting a
	// literal separator appear inside a single node. The quote characters
	// are kept as part of the node value.
	DoubleQuote = '"'
	BackQuote   = '`'
)
