package dynarray_test

import (
	"github.com/san-kum/dynarray"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func items(l *dynarray.List[string]) []string {
	out := make([]string, 0, l.Count())
	for i := 0; i < l.Count(); i++ {
		v, err := l.Get(i)
		Expect(err).NotTo(HaveOccurred())
		out = append(out, v)
	}
	return out
}

var _ = Describe("List", func() {
	var l *dynarray.List[string]

	BeforeEach(func() {
		l = dynarray.New[string]()
	})

	Describe("appending", func() {
		It("keeps every item in insertion order", func() {
			words := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}
			for _, w := range words {
				Expect(l.Add(w)).To(Succeed())
			}
			Expect(l.Count()).To(Equal(len(words)))
			Expect(items(l)).To(Equal(words))
		})

		It("only changes capacity when an append overflows it", func() {
			caps := []int{}
			for i := 0; i < 17; i++ {
				before := l.Cap()
				full := l.Count() == before
				Expect(l.Add("x")).To(Succeed())
				if full {
					Expect(l.Cap()).To(Equal(before * 2))
				} else {
					Expect(l.Cap()).To(Equal(before))
				}
				Expect(l.Cap()).To(BeNumerically(">=", l.Count()))
				caps = append(caps, l.Cap())
			}
			Expect(caps[len(caps)-1]).To(Equal(32))
		})
	})

	Describe("inserting", func() {
		BeforeEach(func() {
			for _, w := range []string{"a", "b", "c"} {
				Expect(l.Add(w)).To(Succeed())
			}
		})

		It("accepts the position one past the last element", func() {
			Expect(l.Insert(3, "d")).To(Succeed())
			Expect(items(l)).To(Equal([]string{"a", "b", "c", "d"}))
		})

		It("rejects positions beyond the count", func() {
			err := l.Insert(4, "d")
			Expect(err).To(MatchError(dynarray.ErrIndexOutOfRange))
			Expect(items(l)).To(Equal([]string{"a", "b", "c"}))
		})

		It("is undone by RemoveAt at the same position", func() {
			Expect(l.Insert(1, "z")).To(Succeed())
			Expect(items(l)).To(Equal([]string{"a", "z", "b", "c"}))
			Expect(l.RemoveAt(1)).To(Succeed())
			Expect(items(l)).To(Equal([]string{"a", "b", "c"}))
		})
	})

	Describe("removing by value", func() {
		It("removes only the first occurrence", func() {
			for _, w := range []string{"a", "x", "b", "x"} {
				Expect(l.Add(w)).To(Succeed())
			}
			removed, err := l.Remove("x")
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(BeTrue())
			Expect(items(l)).To(Equal([]string{"a", "b", "x"}))
		})

		It("reports a miss without changing the list", func() {
			Expect(l.Add("a")).To(Succeed())
			removed, err := l.Remove("q")
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(BeFalse())
			Expect(items(l)).To(Equal([]string{"a"}))
		})
	})

	Describe("popping", func() {
		It("returns the last element", func() {
			for _, w := range []string{"1", "2", "3"} {
				Expect(l.Add(w)).To(Succeed())
			}
			v, err := l.Pop()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal("3"))
			Expect(items(l)).To(Equal([]string{"1", "2"}))
		})

		It("fails on an empty list", func() {
			_, err := l.Pop()
			Expect(err).To(MatchError(dynarray.ErrInvalidOperation))
			var opErr *dynarray.OpError
			Expect(err).To(BeAssignableToTypeOf(opErr))
		})
	})

	Describe("trimming", func() {
		It("shrinks capacity to the count and keeps order", func() {
			for _, w := range []string{"a", "b", "c", "d", "e"} {
				Expect(l.Add(w)).To(Succeed())
			}
			Expect(l.Cap()).To(Equal(8))
			Expect(l.RemoveAt(0)).To(Succeed())
			l.TrimExcess()
			Expect(l.Cap()).To(Equal(4))
			Expect(items(l)).To(Equal([]string{"b", "c", "d", "e"}))
		})
	})

	DescribeTable("index validation",
		func(op func(*dynarray.List[string]) error) {
			Expect(l.Add("only")).To(Succeed())
			Expect(op(l)).To(MatchError(dynarray.ErrIndexOutOfRange))
			Expect(l.Count()).To(Equal(1))
		},
		Entry("get at count", func(l *dynarray.List[string]) error { _, err := l.Get(1); return err }),
		Entry("set at count", func(l *dynarray.List[string]) error { return l.Set(1, "x") }),
		Entry("removeat at count", func(l *dynarray.List[string]) error { return l.RemoveAt(1) }),
		Entry("insert past count", func(l *dynarray.List[string]) error { return l.Insert(2, "x") }),
		Entry("insert negative", func(l *dynarray.List[string]) error { return l.Insert(-1, "x") }),
	)
})
