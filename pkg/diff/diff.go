// Package diff compares string group trees by their dumps.
package diff

import (
	"strings"

	"github.com/kylelemons/godebug/diff"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/gotsg/pkg/tsg"
)

func render(n *tsg.Node) (string, error) {
	var b strings.Builder
	if err := n.DumpWith(&b, tsg.DumpOptions{Ranges: true}); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Trees returns the line diff that turns the dump of got into the dump of
// want, or "" when both have the same structure, labels and tokens.
func Trees(want, got *tsg.Node) (string, error) {
	w, err := render(want)
	if err != nil {
		return "", errors.Errorf("rendering expected tree: %w", err)
	}
	g, err := render(got)
	if err != nil {
		return "", errors.Errorf("rendering actual tree: %w", err)
	}

	return Lines(w, g), nil
}

// Lines diffs two line oriented texts, marking added lines with ➕ and removed
// lines with ➖.
func Lines(want, got string) string {
	abc := diff.Diff(strings.TrimSuffix(got, "\n"), strings.TrimSuffix(want, "\n"))
	if !changed(abc) {
		return ""
	}
	str := "\n\n"
	str += "to convert ACTUAL ⏩️ EXPECTED:\n\n"
	str += "add:    ➕\n"
	str += "remove: ➖\n"
	str += "\n"
	str += strings.ReplaceAll(strings.ReplaceAll("\n"+abc, "\n-", "\n➖"), "\n+", "\n➕")[1:]

	return str
}

func changed(d string) bool {
	for _, line := range strings.Split(d, "\n") {
		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "+") {
			return true
		}
	}
	return false
}
