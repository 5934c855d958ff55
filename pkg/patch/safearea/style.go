package safearea

import (
	"strings"

	"github.com/jmylchreest/padpatch/pkg/patch"
)

// FoldPaddingIntoStyle merges the padding object into every content style
// attribute that is either a bare style reference or a single-line list:
//
//	contentContainerStyle={styles.list}  -> contentContainerStyle={[styles.list, { paddingBottom: bottomPad }]}
//	contentContainerStyle={[a, b]}       -> contentContainerStyle={[a, b, { paddingBottom: bottomPad }]}
//
// Both forms are rewritten in one left-to-right scan, so a list produced for a
// bare reference is not extended again in the same call. The list form does
// not look for an existing padding object: running the patch pipeline over
// its own output appends a second one. CollapseDuplicatePadding repairs that.
// Attributes that are absent are never synthesized.
func (r *Rules) FoldPaddingIntoStyle(doc string) patch.Result {
	matches := r.styleValue.FindAllStringSubmatchIndex(doc, -1)
	if len(matches) == 0 {
		return patch.Unchanged(doc)
	}

	pad := r.profile.padObject()
	var sb strings.Builder
	last := 0
	for _, m := range matches {
		var inner string
		switch {
		case m[2] >= 0:
			inner = doc[m[2]:m[3]]
		default:
			inner = doc[m[4]:m[5]]
		}
		sb.WriteString(doc[last:m[0]])
		sb.WriteString(r.profile.StyleAttr + "={[" + inner + ", " + pad + "]}")
		last = m[1]
	}
	sb.WriteString(doc[last:])

	return patch.Edited(StepFoldPadding, sb.String(), len(matches))
}
