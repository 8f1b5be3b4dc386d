package script

import (
	"context"
	"testing"

	"github.com/san-kum/dynarray"

	. "github.com/onsi/gomega"
)

func mustOps(t *testing.T, lines ...string) []Op {
	t.Helper()
	ops, err := ParseOps(lines)
	if err != nil {
		t.Fatalf("ParseOps: %v", err)
	}
	return ops
}

type recorder struct{ lines []string }

func (r *recorder) OnStep(step Step) { r.lines = append(r.lines, step.Line) }

type counter struct{ n int }

func (c *counter) Name() string      { return "steps" }
func (c *counter) Observe(step Step) { c.n++ }
func (c *counter) Value() float64    { return float64(c.n) }
func (c *counter) Reset()            { c.n = 0 }

func TestSession_EndToEnd(t *testing.T) {
	g := NewWithT(t)

	s := NewSession("int", dynarray.New[int](), IntCodec())
	rec := &recorder{}
	s.AddObserver(rec)
	s.AddMetric(&counter{})

	trace, err := s.Run(context.Background(), mustOps(t,
		"add 10", "add 20", "add 30", "add 40", "add 50",
		"insert 2 99", "remove 30", "trim",
	))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(trace.Failed).To(Equal(0))
	g.Expect(trace.Steps).To(HaveLen(8))
	g.Expect(rec.lines).To(HaveLen(8))
	g.Expect(trace.Metrics).To(HaveKeyWithValue("steps", 8.0))

	g.Expect(trace.Steps[4].Reallocated()).To(BeTrue())
	g.Expect(trace.Steps[4].After.Cap).To(Equal(8))
	g.Expect(trace.Steps[5].After.Items).To(Equal([]string{"10", "20", "99", "30", "40", "50"}))
	g.Expect(trace.Steps[6].Pos).To(Equal(3))
	g.Expect(trace.Steps[6].Result).To(Equal("true"))
	g.Expect(trace.Final).To(Equal(Snapshot{Count: 5, Cap: 5, Items: []string{"10", "20", "99", "40", "50"}}))
}

func TestSession_FailuresAreRecorded(t *testing.T) {
	g := NewWithT(t)

	s := NewSession("int", dynarray.New[int](), IntCodec())
	trace, err := s.Run(context.Background(), mustOps(t, "pop", "get 0", "add x", "add 1", "insert 5 2"))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(trace.Failed).To(Equal(4))

	g.Expect(trace.Steps[0].Err).To(MatchError(dynarray.ErrInvalidOperation))
	g.Expect(trace.Steps[1].Err).To(MatchError(dynarray.ErrIndexOutOfRange))
	g.Expect(trace.Steps[2].Err).To(MatchError(ContainSubstring("invalid int")))
	g.Expect(trace.Steps[3].OK()).To(BeTrue())
	g.Expect(trace.Steps[4].Err).To(MatchError(dynarray.ErrIndexOutOfRange))
	g.Expect(trace.Final.Items).To(Equal([]string{"1"}))
}

func TestSession_Queries(t *testing.T) {
	g := NewWithT(t)

	s := NewSession("string", dynarray.New[string](), StringCodec())
	for _, line := range []string{"add a", `add "b c"`, "set 0 z"} {
		op, err := ParseOp(line)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(s.Apply(op).OK()).To(BeTrue())
	}

	queries := []struct{ line, want string }{
		{"get 1", `"b c"`},
		{"ref 0", `&"z"`},
		{"count", "2"},
		{"cap", "4"},
		{"show", "[z b c]"},
		{"remove q", "false"},
		{"pop", `"b c"`},
		{"count", "1"},
	}
	for _, q := range queries {
		op, err := ParseOp(q.line)
		g.Expect(err).NotTo(HaveOccurred())
		step := s.Apply(op)
		g.Expect(step.Err).NotTo(HaveOccurred(), q.line)
		g.Expect(step.Result).To(Equal(q.want), q.line)
	}
}

func TestSession_Option(t *testing.T) {
	g := NewWithT(t)

	s := NewSession("option", dynarray.New[dynarray.Option[int]](), OptionCodec())
	trace, err := s.Run(context.Background(), mustOps(t, "add 1", "add none", "remove none", "add 0"))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(trace.Steps[1].Err).To(MatchError(dynarray.ErrInvalidArgument))
	g.Expect(trace.Steps[2].Err).To(MatchError(dynarray.ErrInvalidArgument))
	g.Expect(trace.Final.Items).To(Equal([]string{"1", "0"}))
}

func TestSession_Canceled(t *testing.T) {
	g := NewWithT(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewSession("int", dynarray.New[int](), IntCodec())
	trace, err := s.Run(ctx, mustOps(t, "add 1", "add 2"))
	g.Expect(err).To(MatchError(context.Canceled))
	g.Expect(trace.Steps).To(BeEmpty())
	g.Expect(trace.Final.Count).To(Equal(0))
}

func TestRegistry(t *testing.T) {
	g := NewWithT(t)

	r := NewRegistry()
	g.Expect(r.ListKinds()).To(Equal([]string{"int", "option", "string"}))

	e, err := r.NewEngine("string", 0)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(e.Element()).To(Equal("string"))
	g.Expect(e.Snapshot().Cap).To(Equal(0))

	_, err = r.NewEngine("float", 4)
	g.Expect(err).To(HaveOccurred())
	_, err = r.NewEngine("int", -1)
	g.Expect(err).To(HaveOccurred())
}
