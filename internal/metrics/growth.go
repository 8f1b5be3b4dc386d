package metrics

import "github.com/san-kum/dynarray/internal/script"

// Reallocations counts steps that replaced the backing store.
type Reallocations struct {
	name  string
	count int
}

func NewReallocations() *Reallocations {
	return &Reallocations{name: "reallocations"}
}

func (r *Reallocations) Name() string { return r.name }

func (r *Reallocations) Observe(step script.Step) {
	if step.Reallocated() {
		r.count++
	}
}

func (r *Reallocations) Value() float64 { return float64(r.count) }

func (r *Reallocations) Reset() { r.count = 0 }

// CopiedElements totals the elements carried over into a new backing store
// by growth or trim.
type CopiedElements struct {
	name   string
	copies int
}

func NewCopiedElements() *CopiedElements {
	return &CopiedElements{name: "copied_elements"}
}

func (c *CopiedElements) Name() string { return c.name }

func (c *CopiedElements) Observe(step script.Step) {
	if step.Reallocated() {
		c.copies += step.Before.Count
	}
}

func (c *CopiedElements) Value() float64 { return float64(c.copies) }

func (c *CopiedElements) Reset() { c.copies = 0 }
