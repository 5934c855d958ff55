package safearea

import (
	"regexp"
	"strings"

	"github.com/jmylchreest/padpatch/pkg/patch"
)

var (
	leadingComma  = regexp.MustCompile(`^\s*,\s*`)
	trailingComma = regexp.MustCompile(`\s*,\s*$`)
)

// CollapseDuplicatePadding leaves exactly one padding object in every content
// style list that holds more than one. The last object is kept so it still
// overrides the styles before it; every other copy is removed together with
// its separating comma. Lists with zero or one object are untouched, so a
// single call reaches the fixed point.
func (r *Rules) CollapseDuplicatePadding(doc string) patch.Result {
	matches := r.styleList.FindAllStringSubmatchIndex(doc, -1)
	if len(matches) == 0 {
		return patch.Unchanged(doc)
	}

	var sb strings.Builder
	last, removed := 0, 0
	for _, m := range matches {
		inner := doc[m[2]:m[3]]
		collapsed, n := r.collapseList(inner)
		if n == 0 {
			continue
		}
		sb.WriteString(doc[last:m[2]])
		sb.WriteString(collapsed)
		last = m[3]
		removed += n
	}
	if removed == 0 {
		return patch.Unchanged(doc)
	}
	sb.WriteString(doc[last:])

	return patch.Edited(StepCollapse, sb.String(), removed)
}

// collapseList removes all but the last padding object from the contents of a
// list literal and returns the new contents and the number removed.
func (r *Rules) collapseList(inner string) (string, int) {
	locs := r.padObject.FindAllStringIndex(inner, -1)
	if len(locs) < 2 {
		return inner, 0
	}

	var sb strings.Builder
	pos := 0
	for _, loc := range locs[:len(locs)-1] {
		start, end := loc[0], loc[1]
		if sep := leadingComma.FindStringIndex(inner[end:]); sep != nil {
			// Drop the separator after the entry along with the entry.
			end += sep[1]
		} else if sep := trailingComma.FindStringIndex(inner[pos:start]); sep != nil {
			start = pos + sep[0]
		}
		sb.WriteString(inner[pos:start])
		pos = end
	}
	sb.WriteString(inner[pos:])

	return sb.String(), len(locs) - 1
}
