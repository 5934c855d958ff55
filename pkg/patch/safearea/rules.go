package safearea

import (
	"regexp"

	"github.com/jmylchreest/padpatch/pkg/patch"
)

// Step names, in patch pipeline order followed by the clean step.
const (
	StepSafeAreaImport = "safe-area-import"
	StepSpacingImport  = "spacing-import"
	StepBottomPadVars  = "bottom-pad-vars"
	StepFoldPadding    = "fold-padding"
	StepCollapse       = "collapse-padding"
)

// Rules holds the patterns compiled from a Profile. A Rules value is
// immutable and safe to share.
type Rules struct {
	profile Profile

	baseImport   *regexp.Regexp
	designImport *regexp.Regexp
	colorsImport *regexp.Regexp
	entryFunc    *regexp.Regexp
	styleValue   *regexp.Regexp
	styleList    *regexp.Regexp
	padObject    *regexp.Regexp
}

// Compile validates p and builds its patterns.
func Compile(p Profile) (*Rules, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	quote := `['"]`
	// Optional trailing comment after an import statement.
	lineComment := `(?://[^\r\n]*|/\*[^\r\n]*?\*/[ \t]*)?`
	attr := regexp.QuoteMeta(p.StyleAttr)

	return &Rules{
		profile: p,

		// Last line of an import from the base module, single or multi-line.
		// Group 1 ends where the new line is inserted.
		baseImport: regexp.MustCompile(`(?m)(\bfrom[ \t]*` + quote + regexp.QuoteMeta(p.BaseModule) + quote + `[ \t]*;?[ \t]*` + lineComment + `)\r?$`),

		designImport: regexp.MustCompile(`import[ \t]*\{([^}]*)\}\s*from[ \t]*` + quote + regexp.QuoteMeta(p.DesignSystemModule) + quote + `[ \t]*;?`),

		colorsImport: regexp.MustCompile(`(?m)^([ \t]*import\s+(?:type\s+)?(?:\{[^}]*\}|[A-Za-z_$][\w$]*)\s*from[ \t]*` + quote + regexp.QuoteMeta(p.ColorsModule) + quote + `[ \t]*;?[ \t]*` + lineComment + `)\r?$`),

		entryFunc: regexp.MustCompile(`export[ \t]+default[ \t]+function\b[^(]*\([^)]*\)[^{]*\{`),

		// Bare identifier path first, then a single-line list literal.
		styleValue: regexp.MustCompile(`\b` + attr + `=\{(?:([A-Za-z_$][\w$]*(?:\.[A-Za-z_$][\w$]*)*)|\[(.+?)\])\}`),

		styleList: regexp.MustCompile(`(?s)\b` + attr + `=\{\[(.*?)\]\}`),

		padObject: regexp.MustCompile(`\{\s*` + regexp.QuoteMeta(p.PadKey) + `\s*:\s*` + regexp.QuoteMeta(p.PadVar) + `\s*\}`),
	}, nil
}

// MustCompile is like Compile but panics on an invalid profile.
func MustCompile(p Profile) *Rules {
	r, err := Compile(p)
	if err != nil {
		panic(err)
	}
	return r
}

// Profile returns the profile the rules were compiled from.
func (r *Rules) Profile() Profile {
	return r.profile
}

// Patcher returns the patch pipeline: hook import, spacing import, inset
// variables and style merge, in that order.
func (r *Rules) Patcher() *patch.Chain {
	return patch.NewChain(
		patch.NewFunc(StepSafeAreaImport, r.EnsureSafeAreaImport),
		patch.NewFunc(StepSpacingImport, r.EnsureSpacingImport),
		patch.NewFunc(StepBottomPadVars, r.EnsureBottomPadVars),
		patch.NewFunc(StepFoldPadding, r.FoldPaddingIntoStyle),
	)
}

// Cleaner returns the clean pipeline.
func (r *Rules) Cleaner() *patch.Chain {
	return patch.NewChain(
		patch.NewFunc(StepCollapse, r.CollapseDuplicatePadding),
	)
}

var defaultRules = MustCompile(DefaultProfile())

// NewPatcher compiles p and returns its patch pipeline.
func NewPatcher(p Profile) (*patch.Chain, error) {
	r, err := Compile(p)
	if err != nil {
		return nil, err
	}
	return r.Patcher(), nil
}

// NewCleaner compiles p and returns its clean pipeline.
func NewCleaner(p Profile) (*patch.Chain, error) {
	r, err := Compile(p)
	if err != nil {
		return nil, err
	}
	return r.Cleaner(), nil
}

// StepInfo describes one transform for listings.
type StepInfo struct {
	Pipeline    string `json:"pipeline" yaml:"pipeline"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Steps lists every transform of both pipelines in application order.
func Steps() []StepInfo {
	return []StepInfo{
		{"patch", StepSafeAreaImport, "import the safe-area insets hook after the base UI module import"},
		{"patch", StepSpacingImport, "add spacing to the design-system import, or import it after Colors"},
		{"patch", StepBottomPadVars, "declare the insets and bottom padding variables in the default export"},
		{"patch", StepFoldPadding, "merge the padding object into the content container style"},
		{"clean", StepCollapse, "collapse duplicate padding objects in content container style lists"},
	}
}

// EnsureSafeAreaImport applies the default profile's hook import rule.
func EnsureSafeAreaImport(doc string) patch.Result { return defaultRules.EnsureSafeAreaImport(doc) }

// EnsureSpacingImport applies the default profile's spacing import rule.
func EnsureSpacingImport(doc string) patch.Result { return defaultRules.EnsureSpacingImport(doc) }

// EnsureBottomPadVars applies the default profile's variable injection rule.
func EnsureBottomPadVars(doc string) patch.Result { return defaultRules.EnsureBottomPadVars(doc) }

// FoldPaddingIntoStyle applies the default profile's style merge rule.
func FoldPaddingIntoStyle(doc string) patch.Result { return defaultRules.FoldPaddingIntoStyle(doc) }

// CollapseDuplicatePadding applies the default profile's de-duplication rule.
func CollapseDuplicatePadding(doc string) patch.Result {
	return defaultRules.CollapseDuplicatePadding(doc)
}
