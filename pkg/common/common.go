// Package common holds notation shared by the domain builders.
package common

import (
	"github.com/walteh/gotsg/pkg/tsg"
)

const (
	SubscriptLabel   = "subscript"
	SuperscriptLabel = "superscript"
)

// Subscript wraps elts in "_{" … "}".
func Subscript(elts ...tsg.Element) *tsg.Node {
	return enclose(SubscriptLabel, "_{", elts)
}

// Superscript wraps elts in "^{" … "}".
func Superscript(elts ...tsg.Element) *tsg.Node {
	return enclose(SuperscriptLabel, "^{", elts)
}

func enclose(label string, open tsg.Token, elts []tsg.Element) *tsg.Node {
	all := make([]tsg.Element, 0, len(elts)+2)
	all = append(all, open)
	all = append(all, elts...)
	all = append(all, tsg.Token("}"))
	return tsg.Labeled([]string{label}, all...)
}
