package script

import (
	"context"
	"fmt"
	"sort"

	"github.com/san-kum/dynarray"
)

// Engine is a Session with its element type erased, so callers can pick
// the element kind at runtime.
type Engine interface {
	Element() string
	Apply(op Op) Step
	Run(ctx context.Context, ops []Op) (*Trace, error)
	Snapshot() Snapshot
	Metrics() map[string]float64
	AddMetric(m Metric)
	AddObserver(o Observer)
}

var (
	_ Engine = (*Session[int])(nil)
	_ Engine = (*Session[string])(nil)
)

type Registry struct {
	engines map[string]func(capacity int) Engine
}

func NewRegistry() *Registry {
	r := &Registry{
		engines: make(map[string]func(capacity int) Engine),
	}

	r.engines["int"] = func(capacity int) Engine {
		return NewSession("int", dynarray.WithCapacity[int](capacity), IntCodec())
	}
	r.engines["string"] = func(capacity int) Engine {
		return NewSession("string", dynarray.WithCapacity[string](capacity), StringCodec())
	}
	r.engines["option"] = func(capacity int) Engine {
		return NewSession("option", dynarray.WithCapacity[dynarray.Option[int]](capacity), OptionCodec())
	}

	return r
}

// NewEngine returns an empty engine for the named element kind.
func (r *Registry) NewEngine(element string, capacity int) (Engine, error) {
	fn, ok := r.engines[element]
	if !ok {
		return nil, fmt.Errorf("unknown element kind: %s", element)
	}
	if capacity < 0 {
		return nil, fmt.Errorf("capacity must be non-negative, got %d", capacity)
	}
	return fn(capacity), nil
}

func (r *Registry) ListKinds() []string {
	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
