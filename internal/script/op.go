package script

import (
	"fmt"
	"strconv"
	"strings"
)

type Kind string

const (
	OpAdd      Kind = "add"
	OpInsert   Kind = "insert"
	OpRemove   Kind = "remove"
	OpRemoveAt Kind = "removeat"
	OpGet      Kind = "get"
	OpSet      Kind = "set"
	OpRef      Kind = "ref"
	OpPop      Kind = "pop"
	OpClear    Kind = "clear"
	OpTrim     Kind = "trim"
	OpCount    Kind = "count"
	OpCap      Kind = "cap"
	OpShow     Kind = "show"
)

// arity lists, per op, whether it takes an index and whether it takes a value.
var arity = map[Kind]struct{ index, value bool }{
	OpAdd:      {false, true},
	OpInsert:   {true, true},
	OpRemove:   {false, true},
	OpRemoveAt: {true, false},
	OpGet:      {true, false},
	OpSet:      {true, true},
	OpRef:      {true, false},
	OpPop:      {},
	OpClear:    {},
	OpTrim:     {},
	OpCount:    {},
	OpCap:      {},
	OpShow:     {},
}

var aliases = map[string]Kind{
	"append":     OpAdd,
	"push":       OpAdd,
	"remove_at":  OpRemoveAt,
	"delete":     OpRemoveAt,
	"trimexcess": OpTrim,
	"len":        OpCount,
	"capacity":   OpCap,
	"print":      OpShow,
}

// Op is one parsed script line. Value stays textual until a Codec decodes it.
type Op struct {
	Kind  Kind
	Index int
	Value string
}

func (o Op) String() string {
	a := arity[o.Kind]
	parts := []string{string(o.Kind)}
	if a.index {
		parts = append(parts, strconv.Itoa(o.Index))
	}
	if a.value {
		parts = append(parts, o.Value)
	}
	return strings.Join(parts, " ")
}

// ParseOp parses a line such as "insert 2 99" or "pop".
func ParseOp(line string) (Op, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Op{}, fmt.Errorf("empty op")
	}

	name := strings.ToLower(fields[0])
	kind := Kind(name)
	if alias, ok := aliases[name]; ok {
		kind = alias
	}
	a, ok := arity[kind]
	if !ok {
		return Op{}, fmt.Errorf("unknown op: %s", fields[0])
	}

	want := 1
	if a.index {
		want++
	}
	if a.value {
		want++
	}
	args := fields[1:]
	if a.value && len(fields) > want {
		// values may contain spaces, e.g. string elements
		args = append(args[:want-2], strings.Join(args[want-2:], " "))
	}
	if len(args) != want-1 {
		return Op{}, fmt.Errorf("%s: expected %d argument(s), got %d", kind, want-1, len(fields)-1)
	}

	op := Op{Kind: kind, Index: -1}
	if a.index {
		idx, err := strconv.Atoi(args[0])
		if err != nil {
			return Op{}, fmt.Errorf("%s: invalid index %q", kind, args[0])
		}
		op.Index = idx
		args = args[1:]
	}
	if a.value {
		op.Value = args[0]
	}
	return op, nil
}

// ParseOps parses script lines, skipping blanks and lines starting with '#'.
func ParseOps(lines []string) ([]Op, error) {
	ops := make([]Op, 0, len(lines))
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		op, err := ParseOp(trimmed)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Kinds returns every op name in a stable order.
func Kinds() []Kind {
	return []Kind{OpAdd, OpInsert, OpRemove, OpRemoveAt, OpGet, OpSet, OpRef,
		OpPop, OpClear, OpTrim, OpCount, OpCap, OpShow}
}
