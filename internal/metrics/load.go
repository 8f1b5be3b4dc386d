package metrics

import "github.com/san-kum/dynarray/internal/script"

// LoadFactor is the mean count/capacity ratio after each step.
// Steps that leave a zero-capacity list are skipped.
type LoadFactor struct {
	name    string
	sum     float64
	samples int
}

func NewLoadFactor() *LoadFactor {
	return &LoadFactor{name: "load_factor"}
}

func (l *LoadFactor) Name() string { return l.name }

func (l *LoadFactor) Observe(step script.Step) {
	if step.After.Cap == 0 {
		return
	}
	l.sum += float64(step.After.Count) / float64(step.After.Cap)
	l.samples++
}

func (l *LoadFactor) Value() float64 {
	if l.samples == 0 {
		return 0
	}
	return l.sum / float64(l.samples)
}

func (l *LoadFactor) Reset() {
	l.sum = 0
	l.samples = 0
}

// Defaults returns a fresh instance of every metric.
func Defaults() []script.Metric {
	return []script.Metric{
		NewReallocations(),
		NewCopiedElements(),
		NewShiftedElements(),
		NewLoadFactor(),
	}
}
