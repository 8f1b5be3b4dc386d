package script

import (
	"context"
	"fmt"

	"github.com/san-kum/dynarray"
)

// Session applies ops to a single list and records each as a Step.
type Session[T comparable] struct {
	element   string
	list      *dynarray.List[T]
	codec     Codec[T]
	seq       int
	metrics   []Metric
	observers []Observer
}

func NewSession[T comparable](element string, list *dynarray.List[T], codec Codec[T]) *Session[T] {
	return &Session[T]{
		element:   element,
		list:      list,
		codec:     codec,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Session[T]) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Session[T]) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Session[T]) Element() string { return s.element }

func (s *Session[T]) List() *dynarray.List[T] { return s.list }

func (s *Session[T]) Snapshot() Snapshot {
	snap := Snapshot{
		Count: s.list.Count(),
		Cap:   s.list.Cap(),
		Items: make([]string, 0, s.list.Count()),
	}
	for i := 0; i < s.list.Count(); i++ {
		v, _ := s.list.Get(i)
		snap.Items = append(snap.Items, s.codec.Format(v))
	}
	return snap
}

// Apply runs a single op. Failures are recorded in the returned Step.
func (s *Session[T]) Apply(op Op) Step {
	s.seq++
	step := Step{
		Seq:    s.seq,
		Op:     op,
		Line:   op.String(),
		Pos:    -1,
		Before: s.Snapshot(),
	}
	step.Result, step.Pos, step.Err = s.exec(op)
	step.After = s.Snapshot()

	for _, m := range s.metrics {
		m.Observe(step)
	}
	for _, obs := range s.observers {
		obs.OnStep(step)
	}
	return step
}

// Run applies ops in order, stopping early only if ctx is done.
func (s *Session[T]) Run(ctx context.Context, ops []Op) (*Trace, error) {
	trace := &Trace{
		Element: s.element,
		Initial: s.Snapshot(),
		Steps:   make([]Step, 0, len(ops)),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	for _, op := range ops {
		select {
		case <-ctx.Done():
			s.finish(trace)
			return trace, ctx.Err()
		default:
		}

		step := s.Apply(op)
		if !step.OK() {
			trace.Failed++
		}
		trace.Steps = append(trace.Steps, step)
	}

	s.finish(trace)
	return trace, nil
}

func (s *Session[T]) Metrics() map[string]float64 {
	out := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

func (s *Session[T]) finish(trace *Trace) {
	trace.Final = s.Snapshot()
	trace.Metrics = s.Metrics()
}

func (s *Session[T]) exec(op Op) (string, int, error) {
	l := s.list

	var item T
	if arity[op.Kind].value {
		v, err := s.codec.Parse(op.Value)
		if err != nil {
			return "", -1, err
		}
		item = v
	}

	switch op.Kind {
	case OpAdd:
		pos := l.Count()
		if err := l.Add(item); err != nil {
			return "", -1, err
		}
		return "", pos, nil
	case OpInsert:
		if err := l.Insert(op.Index, item); err != nil {
			return "", -1, err
		}
		return "", op.Index, nil
	case OpRemove:
		pos := s.indexOf(item)
		removed, err := l.Remove(item)
		if err != nil {
			return "", -1, err
		}
		if !removed {
			return "false", -1, nil
		}
		return "true", pos, nil
	case OpRemoveAt:
		if err := l.RemoveAt(op.Index); err != nil {
			return "", -1, err
		}
		return "", op.Index, nil
	case OpGet:
		v, err := l.Get(op.Index)
		if err != nil {
			return "", -1, err
		}
		return s.codec.Format(v), op.Index, nil
	case OpRef:
		p, err := l.Ref(op.Index)
		if err != nil {
			return "", -1, err
		}
		return fmt.Sprintf("&%s", s.codec.Format(*p)), op.Index, nil
	case OpSet:
		if err := l.Set(op.Index, item); err != nil {
			return "", -1, err
		}
		return "", op.Index, nil
	case OpPop:
		pos := l.Count() - 1
		v, err := l.Pop()
		if err != nil {
			return "", -1, err
		}
		return s.codec.Format(v), pos, nil
	case OpClear:
		l.Clear()
		return "", -1, nil
	case OpTrim:
		l.TrimExcess()
		return "", -1, nil
	case OpCount:
		return fmt.Sprint(l.Count()), -1, nil
	case OpCap:
		return fmt.Sprint(l.Cap()), -1, nil
	case OpShow:
		return l.String(), -1, nil
	}
	return "", -1, fmt.Errorf("unknown op: %s", op.Kind)
}

// indexOf finds the slot Remove will target, for step reporting.
func (s *Session[T]) indexOf(item T) int {
	for i := 0; i < s.list.Count(); i++ {
		if v, _ := s.list.Get(i); v == item {
			return i
		}
	}
	return -1
}
