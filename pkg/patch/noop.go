package patch

// Noop passes documents through without modification.
// Useful as a placeholder step or to exercise a pipeline without edits.
type Noop struct{}

// NewNoop creates a new no-op transform.
func NewNoop() *Noop {
	return &Noop{}
}

// Apply returns the input unchanged.
func (n *Noop) Apply(doc string) Result {
	return Unchanged(doc)
}

// Name returns the transform name.
func (n *Noop) Name() string {
	return "noop"
}
