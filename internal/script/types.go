package script

// Snapshot is a copy of a list's observable state.
type Snapshot struct {
	Count int      `json:"count"`
	Cap   int      `json:"cap"`
	Items []string `json:"items"`
}

// Step records one applied op. Pos is the slot the op acted on, or -1.
type Step struct {
	Seq    int
	Op     Op
	Line   string
	Pos    int
	Result string
	Err    error
	Before Snapshot
	After  Snapshot
}

func (s Step) OK() bool { return s.Err == nil }

// Reallocated reports whether the step replaced the backing store.
func (s Step) Reallocated() bool { return s.Before.Cap != s.After.Cap }

type Metric interface {
	Name() string
	Observe(step Step)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(step Step)
}

type Trace struct {
	Element string
	Initial Snapshot
	Steps   []Step
	Final   Snapshot
	Metrics map[string]float64
	Failed  int
}
