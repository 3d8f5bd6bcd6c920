package tokens_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/gotsg/cmd/gotsg/tokens"
	"github.com/walteh/gotsg/pkg/tsg"
)

func TestRows(t *testing.T) {
	root := tsg.New(
		tsg.Token("a"),
		tsg.Labeled([]string{"outer", "x"}, tsg.New(tsg.Labeled([]string{"inner"}, tsg.Token("b"))), tsg.Token("c")),
	)

	assert.Equal(t, []tokens.Row{
		{Pos: 0, Text: "a"},
		{Pos: 1, Text: "b", Chain: []string{"outer,x", "inner"}},
		{Pos: 2, Text: "c", Chain: []string{"outer,x"}},
	}, tokens.Rows(root))
}

func TestFormatPadsByGraphemes(t *testing.T) {
	rows := []tokens.Row{
		{Pos: 0, Text: "e\u0301", Chain: []string{"accent"}},
		{Pos: 1, Text: "ab", Chain: []string{"plain"}},
	}

	var buf bytes.Buffer
	require.NoError(t, tokens.Format(&buf, rows))

	assert.Equal(t, "0  e\u0301   accent\n1  ab  plain\n", buf.String())
}

func TestFormatWidePositions(t *testing.T) {
	var rows []tokens.Row
	for i := range 11 {
		rows = append(rows, tokens.Row{Pos: i, Text: "x"})
	}

	var buf bytes.Buffer
	require.NoError(t, tokens.Format(&buf, rows))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, " 0  x", lines[0])
	assert.Equal(t, "10  x", lines[10])
}
