// Package patch provides interfaces and building blocks for text patching pipelines.
// A pipeline is an ordered list of transforms applied to a whole document.
package patch

// Transform rewrites a document. Transforms are total: a pattern that does
// not match yields an unchanged result, never an error.
type Transform interface {
	// Apply runs the transform over doc.
	Apply(doc string) Result

	// Name returns the transform name for logging and reports.
	Name() string
}

// Result is the outcome of applying a transform.
type Result struct {
	// Text is the transformed document. Equal to the input when Changed is false.
	Text string `json:"-" yaml:"-"`

	// Changed reports whether any edit was made.
	Changed bool `json:"changed" yaml:"changed"`

	// Edits counts individual insertions or rewrites.
	Edits int `json:"edits" yaml:"edits"`

	// Steps names the transforms that changed the document, in order.
	Steps []string `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// Unchanged returns a no-op result for doc.
func Unchanged(doc string) Result {
	return Result{Text: doc}
}

// Edited returns a result for a transform named name that made n edits.
// n <= 0 is treated as no change.
func Edited(name, text string, n int) Result {
	if n <= 0 {
		return Result{Text: text}
	}
	return Result{Text: text, Changed: true, Edits: n, Steps: []string{name}}
}

// Func adapts a plain function to the Transform interface.
type Func struct {
	name string
	fn   func(string) Result
}

// NewFunc creates a named transform from fn.
func NewFunc(name string, fn func(doc string) Result) *Func {
	return &Func{name: name, fn: fn}
}

// Apply calls the wrapped function.
func (f *Func) Apply(doc string) Result {
	return f.fn(doc)
}

// Name returns the transform name.
func (f *Func) Name() string {
	return f.name
}
