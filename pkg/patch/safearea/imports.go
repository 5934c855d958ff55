package safearea

import (
	"strings"
	"unicode"

	"github.com/jmylchreest/padpatch/pkg/patch"
)

// EnsureSafeAreaImport inserts the hook import on its own line directly after
// the first import from the base UI module, keeping any trailing comment on
// the anchor line. Documents that already mention the hook, or have no such
// import, are returned unchanged.
func (r *Rules) EnsureSafeAreaImport(doc string) patch.Result {
	if strings.Contains(doc, r.profile.SafeAreaHook) {
		return patch.Unchanged(doc)
	}
	m := r.baseImport.FindStringSubmatchIndex(doc)
	if m == nil {
		return patch.Unchanged(doc)
	}
	return patch.Edited(StepSafeAreaImport, insertAt(doc, m[3], lineEnding(doc)+r.profile.safeAreaImport()), 1)
}

// EnsureSpacingImport makes the spacing symbol available from the design
// system module. The fallbacks run in order and stop at the first that applies:
//
//  1. a design-system import already lists the symbol: no change
//  2. a design-system import exists: append the symbol to its list
//  3. a Colors import exists: add a spacing-only import after it
//  4. otherwise: no change
func (r *Rules) EnsureSpacingImport(doc string) patch.Result {
	matches := r.designImport.FindAllStringSubmatchIndex(doc, -1)
	for _, m := range matches {
		if listsSymbol(doc[m[2]:m[3]], r.profile.SpacingSymbol) {
			return patch.Unchanged(doc)
		}
	}

	if len(matches) > 0 {
		m := matches[0]
		list := appendSymbol(doc[m[2]:m[3]], r.profile.SpacingSymbol)
		return patch.Edited(StepSpacingImport, doc[:m[2]]+list+doc[m[3]:], 1)
	}

	if m := r.colorsImport.FindStringSubmatchIndex(doc); m != nil {
		return patch.Edited(StepSpacingImport, insertAt(doc, m[3], lineEnding(doc)+r.profile.spacingImport()), 1)
	}

	return patch.Unchanged(doc)
}

// listsSymbol reports whether a named import list such as " Colors, spacing as s "
// imports sym.
func listsSymbol(list, sym string) bool {
	for _, entry := range strings.Split(list, ",") {
		fields := strings.Fields(entry)
		if len(fields) == 0 {
			continue
		}
		name := fields[0]
		if name == "type" && len(fields) > 1 {
			name = fields[1]
		}
		if name == sym {
			return true
		}
	}
	return false
}

// appendSymbol adds sym as the last entry of a named import list, keeping the
// existing entries and surrounding whitespace as written.
func appendSymbol(list, sym string) string {
	if strings.TrimSpace(list) == "" {
		return " " + sym + " "
	}
	body := strings.TrimRightFunc(list, unicode.IsSpace)
	trail := list[len(body):]
	if strings.HasSuffix(body, ",") {
		// Keep the trailing comma style of multi-line lists.
		return body + " " + sym + "," + trail
	}
	return body + ", " + sym + trail
}

func insertAt(doc string, at int, s string) string {
	return doc[:at] + s + doc[at:]
}

// lineEnding returns the line terminator of the document's first line, "\n"
// when there is none.
func lineEnding(doc string) string {
	if i := strings.IndexByte(doc, '\n'); i > 0 && doc[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
