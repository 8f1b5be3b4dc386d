package metrics

import "github.com/san-kum/dynarray/internal/script"

// ShiftedElements totals the elements moved one slot by insert and remove.
type ShiftedElements struct {
	name  string
	moved int
}

func NewShiftedElements() *ShiftedElements {
	return &ShiftedElements{name: "shifted_elements"}
}

func (s *ShiftedElements) Name() string { return s.name }

func (s *ShiftedElements) Observe(step script.Step) {
	if !step.OK() || step.Pos < 0 {
		return
	}
	switch step.Op.Kind {
	case script.OpInsert:
		s.moved += step.Before.Count - step.Pos
	case script.OpRemove, script.OpRemoveAt:
		if step.After.Count < step.Before.Count {
			s.moved += step.Before.Count - 1 - step.Pos
		}
	}
}

func (s *ShiftedElements) Value() float64 { return float64(s.moved) }

func (s *ShiftedElements) Reset() { s.moved = 0 }
