package core

// SplitPathToNodes splits a raw dotted path into its node strings.
//
// A node may be quoted with double or back quotes, in which case separator
// characters inside it are literal and the quote characters are preserved
// in the node value: `root.sg."d.1"` yields ["root", "sg", "\"d.1\""].
// Rejoining such nodes with the separator reproduces the quoted form.
func SplitPathToNodes(raw string) ([]string, error) {
	if len(raw) == 0 {
		return nil, &MalformedPathError{Path: raw, Message: "path is empty"}
	}

	var (
		nodes []string
		start int
		quote byte // open quote character, 0 when outside a quoted node
	)
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case quote != 0:
			if c == quote {
				// A closing quote must end the node.
				if i+1 < len(raw) && raw[i+1] != PathSeparatorByte {
					return nil, &MalformedPathError{Path: raw, Message: "unexpected text after closing quote"}
				}
				quote = 0
			}
		case c == DoubleQuote || c == BackQuote:
			if i != start {
				return nil, &MalformedPathError{Path: raw, Message: "quote may only start a node"}
			}
			quote = c
		case c == PathSeparatorByte:
			if i == start {
				return nil, &MalformedPathError{Path: raw, Message: "empty node"}
			}
			nodes = append(nodes, raw[start:i])
			start = i + 1
		}
	}
	if quote != 0 {
		return nil, &MalformedPathError{Path: raw, Message: "unterminated quote"}
	}
	if start == len(raw) {
		// The string ended on a separator.
		return nil, &MalformedPathError{Path: raw, Message: "empty node"}
	}
	nodes = append(nodes, raw[start:])
	return nodes, nil
}
