package safearea

import (
	"strings"

	"github.com/jmylchreest/padpatch/pkg/patch"
)

// EnsureBottomPadVars declares the insets and bottom padding variables right
// after the opening brace of the first default-exported function.
//
// The presence check is a plain substring search for the padding variable: a
// document mentioning it anywhere, even in a comment, is left alone.
func (r *Rules) EnsureBottomPadVars(doc string) patch.Result {
	if strings.Contains(doc, r.profile.PadVar) {
		return patch.Unchanged(doc)
	}
	loc := r.entryFunc.FindStringIndex(doc)
	if loc == nil {
		return patch.Unchanged(doc)
	}
	return patch.Edited(StepBottomPadVars, insertAt(doc, loc[1], r.profile.padVars(lineEnding(doc))), 1)
}
