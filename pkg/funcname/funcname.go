// Package funcname splits the names the runtime reports for functions and
// methods into their package, receiver and function parts.
package funcname

import (
	"reflect"
	"runtime"
	"strings"
)

// Name is a parsed runtime function name.
//
//	github.com/walteh/gotsg/pkg/linalg.(*Basis).tsgLetter
//	└──────────── Package ──────────┘ └Recv┘ └─ Func ─┘
type Name struct {
	Package  string
	Receiver string
	Func     string
}

// Method reports whether the name belongs to a method rather than a plain function.
func (n Name) Method() bool {
	return n.Receiver != ""
}

// Of returns the parsed runtime name of fn, which must be a func value.
func Of(fn any) Name {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return Name{}
	}

	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return Name{}
	}

	return Parse(f.Name())
}

// Parse splits a fully qualified runtime name.
//
// Closures come back with a receiver like "TestFoo" and a Func like "func1";
// callers that care should check the Func part themselves.
func Parse(full string) Name {
	// method values are reported with a "-fm" suffix
	full = strings.TrimSuffix(full, "-fm")

	lastSlash := strings.LastIndexByte(full, '/')
	if lastSlash < 0 {
		lastSlash = 0
	}

	firstDot := strings.IndexByte(full[lastSlash:], '.')
	if firstDot < 0 {
		return Name{Func: full}
	}
	firstDot += lastSlash

	name := Name{Package: full[:firstDot]}
	rest := full[firstDot+1:]

	lastDot := strings.LastIndexByte(rest, '.')
	if lastDot < 0 {
		name.Func = rest
		return name
	}

	name.Func = rest[lastDot+1:]
	recv := strings.TrimSuffix(rest[:lastDot], ".")
	recv = strings.TrimPrefix(recv, "(")
	recv = strings.TrimSuffix(recv, ")")
	recv = strings.TrimPrefix(recv, "*")
	name.Receiver = recv

	return name
}

// FileNameOfPath returns the last element of a slash separated path.
func FileNameOfPath(path string) string {
	tot := strings.Split(path, "/")
	if len(tot) > 1 {
		return tot[len(tot)-1]
	}

	return path
}
