/*
Package tsg builds labeled trees of TeX string tokens ("string groups").

A tree flattens into the ordered token sequence a typesetting engine expects,
one rendered unit per token, while every group remembers the half-open range
of flattened positions it covers. That lets callers ask for "the basis
letter" or "the function argument" and get back an index range into the
rendered output.

Structure:
---------

	Group[]              [0,3)
	├───x                0
	└───Group[Foo.bar]   [1,3)
	    ├───y            1
	    └───z            2

Every construction path (New, Labeled, Group, Builder.Build, Copy) runs the
index pass on the new root, so a freshly built tree is always queryable.

Queries:
-------
  - FindByLabel: labels containing "." match exactly, others match as a
    substring. A match stops descent on its branch.
  - FindByStr: case-insensitive token match at every depth, no pruning.

Both take a depth window through Within.
*/
package tsg
