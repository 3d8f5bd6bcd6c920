package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/gotsg/cmd/gotsg/diff"
	"github.com/walteh/gotsg/cmd/gotsg/find"
)

const scenarioHCL = `
tree "scenario_a" {
  labels   = ["Root"]
  elements = ["x", { labels = ["Foo.bar"], elements = ["y", "z"] }]
}
`

const variantsYAML = `
trees:
  - name: same_as_a
    labels: [Root]
    elements:
      - x
      - labels: [Foo.bar]
        elements: [y, z]
  - name: relabeled
    labels: [Root]
    elements:
      - x
      - labels: [Foo.baz]
        elements: [y, z]
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func treeDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), []byte(scenarioHCL), 0o644))
	return dir
}

func TestCommands(t *testing.T) {
	dir := treeDir(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "flatten",
			args: []string{"flatten", "--dir", dir},
			want: "scenario_a: x y z\n",
		},
		{
			name: "flatten_sep",
			args: []string{"flatten", "--dir", dir, "--sep", "", "*.hcl"},
			want: "scenario_a: xyz\n",
		},
		{
			name: "dump",
			args: []string{"dump", "--dir", dir},
			want: strings.Join([]string{
				"# scenario_a (a.hcl)",
				"Group[Root]",
				"├───x",
				"└───Group[Foo.bar]",
				"    ├───y",
				"    └───z",
				"",
			}, "\n"),
		},
		{
			name: "find",
			args: []string{"find", "--dir", dir, "--label", "Foo.bar", "--str", "Y,z"},
			want: "scenario_a:\n  labels: [1,3)\n  tokens: 1 2\n",
		},
		{
			name: "find_nodes",
			args: []string{"find", "--dir", dir, "--label", "bar", "--nodes"},
			want: "scenario_a:\n  [1,3) Group[Foo.bar] y z\n",
		},
		{
			name: "find_depth",
			args: []string{"find", "--dir", dir, "--label", "Root", "--depth-start", "1"},
			want: "scenario_a:\n  labels: \n",
		},
		{
			name: "tokens",
			args: []string{"tokens", "--dir", dir},
			want: "# scenario_a\n0  x  Root\n1  y  Root > Foo.bar\n2  z  Root > Foo.bar\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindNeedsQuery(t *testing.T) {
	_, err := execute(t, "find", "--dir", treeDir(t))
	require.ErrorIs(t, err, find.ErrNoQuery)
}

func TestMissingTrees(t *testing.T) {
	_, err := execute(t, "flatten", "--dir", t.TempDir(), "*.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no tree files match")
}

func TestDemo(t *testing.T) {
	got, err := execute(t, "demo")
	require.NoError(t, err)

	assert.Contains(t, got, `tokens: [\alpha(\vec{v})]_{\mathcal{C}}=[\alpha]_{\mathcal{B},\mathcal{C}}\cdot[\vec{v}]_{\mathcal{B}}`)
	assert.Contains(t, got, "Group[LinearMap.ReprMatrixMult] [0,29)")
	assert.Contains(t, got, "Basis.Letter: [9,10) [16,17) [18,19) [27,28)\n")
	assert.Contains(t, got, "LinearMap.Argument: [3,6)\n")
	assert.Contains(t, got, "brackets: 0 7 12 14 21 25\n")
}

func TestDiff(t *testing.T) {
	dir := treeDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte(variantsYAML), 0o644))

	got, err := execute(t, "diff", "--dir", dir, "scenario_a", "same_as_a")
	require.NoError(t, err)
	assert.Equal(t, "scenario_a and same_as_a match\n", got)

	got, err = execute(t, "diff", "--dir", dir, "scenario_a", "relabeled")
	require.ErrorIs(t, err, diff.ErrTreesDiffer)
	assert.Contains(t, got, "➕└───Group[Foo.bar] [1,3)")
	assert.Contains(t, got, "➖└───Group[Foo.baz] [1,3)")

	_, err = execute(t, "diff", "--dir", dir, "scenario_a", "missing")
	require.ErrorIs(t, err, diff.ErrUnknownTree)
}
