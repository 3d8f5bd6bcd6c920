package tsg_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/gotsg/pkg/tsg"
)

func TestDump(t *testing.T) {
	root, _ := scenarioA()

	var buf bytes.Buffer
	require.NoError(t, root.Dump(&buf))

	want := strings.Join([]string{
		"Group[]",
		"├───x",
		"└───Group[Foo.bar]",
		"    ├───y",
		"    └───z",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestDumpNestedBranches(t *testing.T) {
	root := tsg.Labeled([]string{"a", "b"},
		tsg.New(tsg.Labeled([]string{"c"}, tsg.Token("1")), tsg.Token("2")),
		tsg.Token("3"),
		tsg.New(),
	)

	var buf bytes.Buffer
	require.NoError(t, root.DumpWith(&buf, tsg.DumpOptions{Ranges: true}))

	want := strings.Join([]string{
		"Group[a,b] [0,3)",
		"├───Group[] [0,2)",
		"│   ├───Group[c] [0,1)",
		"│   │   └───1 0",
		"│   └───2 1",
		"├───3 2",
		"└───Group[] [3,3)",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestDumpIDsAndColor(t *testing.T) {
	root, n1 := scenarioA()

	var buf bytes.Buffer
	require.NoError(t, root.DumpWith(&buf, tsg.DumpOptions{IDs: true}))
	assert.Contains(t, buf.String(), root.ID().String())
	assert.Contains(t, buf.String(), n1.ID().String())

	buf.Reset()
	require.NoError(t, root.DumpWith(&buf, tsg.DumpOptions{Color: true}))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "Foo.bar")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestDumpWriteError(t *testing.T) {
	root, _ := scenarioA()
	require.ErrorIs(t, root.Dump(failingWriter{}), assert.AnError)
}

func TestIntersperse(t *testing.T) {
	assert.Nil(t, tsg.Intersperse([]string{}, ","))
	assert.Equal(t, []string{"a"}, tsg.Intersperse([]string{"a"}, ","))
	assert.Equal(t, []string{"a", ",", "b", ",", "c"}, tsg.Intersperse([]string{"a", "b", "c"}, ","))
}

func TestQualify(t *testing.T) {
	assert.Equal(t, "Widget.Arrow", tsg.Qualify(&Widget{}, "Arrow"))
	assert.Equal(t, "Widget.Arrow", tsg.Qualify(Widget{}, "Arrow"))
	assert.Equal(t, "Arrow", tsg.Qualify(nil, "Arrow"))
}
