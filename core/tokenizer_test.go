package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPathToNodes(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "plain nodes",
			raw:      "root.sg.d1.s1",
			expected: []string{"root", "sg", "d1", "s1"},
		},
		{
			name:     "single node",
			raw:      "root",
			expected: []string{"root"},
		},
		{
			name:     "double-quoted node with separator",
			raw:      `root.sg."d.1"."s.1"`,
			expected: []string{"root", "sg", `"d.1"`, `"s.1"`},
		},
		{
			name:     "backquoted node with separator",
			raw:      "root.`d.1`.s1",
			expected: []string{"root", "`d.1`", "s1"},
		},
		{
			name:     "quoted node without separator",
			raw:      `root."sg".s1`,
			expected: []string{"root", `"sg"`, "s1"},
		},
		{
			name:     "other quote character is literal inside quotes",
			raw:      "root.\"a`b\".s1",
			expected: []string{"root", "\"a`b\"", "s1"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			nodes, err := SplitPathToNodes(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, nodes)
		})
	}
}

func TestSplitPathToNodes_Malformed(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{name: "empty input", raw: ""},
		{name: "only separator", raw: "."},
		{name: "leading separator", raw: ".root"},
		{name: "trailing separator", raw: "root."},
		{name: "consecutive separators", raw: "root..s1"},
		{name: "unterminated double quote", raw: `root."d.1`},
		{name: "unterminated backquote", raw: "root.`d1"},
		{name: "text after closing quote", raw: `root."d1"x.s1`},
		{name: "quote opening mid-node", raw: `root.d"1".s1`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := SplitPathToNodes(tc.raw)
			require.Error(t, err)
			assert.True(t, IsMalformedPathError(err), "expected MalformedPathError, got %v", err)
		})
	}
}
