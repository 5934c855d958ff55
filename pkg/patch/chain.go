package patch

import (
	"strings"
)

// Chain applies multiple transforms in sequence.
// Each transform sees the output of the previous one.
type Chain struct {
	transforms []Transform
}

// NewChain creates a transform that applies transforms in the order provided.
//
// Example:
//
//	chain := patch.NewChain(
//	    patch.NewFunc("safe-area-import", safearea.EnsureSafeAreaImport),
//	    patch.NewFunc("spacing-import", safearea.EnsureSpacingImport),
//	)
func NewChain(transforms ...Transform) *Chain {
	return &Chain{
		transforms: transforms,
	}
}

// Apply runs every transform and merges their results.
func (c *Chain) Apply(doc string) Result {
	out := Unchanged(doc)
	for _, t := range c.transforms {
		r := t.Apply(out.Text)
		out.Text = r.Text
		if !r.Changed {
			continue
		}
		out.Changed = true
		out.Edits += r.Edits
		out.Steps = append(out.Steps, r.Steps...)
	}
	return out
}

// Transforms returns the chained transforms in application order.
func (c *Chain) Transforms() []Transform {
	return append([]Transform(nil), c.transforms...)
}

// Len returns the number of chained transforms.
func (c *Chain) Len() int {
	return len(c.transforms)
}

// Name returns the names of all chained transforms.
func (c *Chain) Name() string {
	names := make([]string, len(c.transforms))
	for i, t := range c.transforms {
		names[i] = t.Name()
	}
	return "chain(" + strings.Join(names, "->") + ")"
}
