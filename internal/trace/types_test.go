package trace

import (
	"encoding/json"
	"errors"
	"testing"

	. "github.com/onsi/gomega"
)

func TestFlag_Set(t *testing.T) {
	g := NewWithT(t)

	f := None.With(Pivot).With(Comparing)
	g.Expect(f.Has(Pivot)).To(BeTrue())
	g.Expect(f.Has(Comparing)).To(BeTrue())
	g.Expect(f.Has(Sorted)).To(BeFalse())
	g.Expect(f.Has(None)).To(BeFalse())
	g.Expect(f.String()).To(Equal("comparing|pivot"))
	g.Expect(None.String()).To(Equal("none"))
}

func TestFlag_JSON(t *testing.T) {
	g := NewWithT(t)

	data, err := json.Marshal(Swapping.With(Sorted))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(string(data)).To(Equal(`["swapping","sorted"]`))

	var f Flag
	g.Expect(json.Unmarshal([]byte(`["found"]`), &f)).To(Succeed())
	g.Expect(f).To(Equal(Found))
	g.Expect(json.Unmarshal([]byte(`["glowing"]`), &f)).NotTo(Succeed())
}

func TestElements_AssignsIDsByPosition(t *testing.T) {
	g := NewWithT(t)

	els := Elements([]int{7, 7, 3})
	g.Expect(els).To(Equal([]Element{{Value: 7, ID: 0}, {Value: 7, ID: 1}, {Value: 3, ID: 2}}))
}

func TestTrace_AtReturnsCopies(t *testing.T) {
	g := NewWithT(t)

	steps := []Step{{Elements: Elements([]int{1, 2}), Description: "start"}}
	tr, err := New("bubble", nil, steps)
	g.Expect(err).NotTo(HaveOccurred())

	s := tr.At(0)
	s.Elements[0].Value = 99
	s.Elements[1].Flags = Found

	g.Expect(tr.At(0).Values()).To(Equal([]int{1, 2}))
	g.Expect(tr.At(0).Flagged(Found)).To(BeEmpty())
}

func TestTrace_Empty(t *testing.T) {
	g := NewWithT(t)

	_, err := New("bubble", nil, nil)
	g.Expect(err).To(MatchError(ErrEmptyTrace))
}

func TestTrace_Clamp(t *testing.T) {
	tr, _ := New("linear", nil, []Step{{}, {}, {}})

	tests := []struct {
		in, want int
	}{
		{-5, 0},
		{0, 0},
		{2, 2},
		{3, 2},
		{100, 2},
	}
	for _, tt := range tests {
		if got := tr.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTrace_JSONRoundTrip(t *testing.T) {
	g := NewWithT(t)

	target := 8
	els := Elements([]int{5, 8})
	els[1].Flags = Comparing.With(Found)
	tr, _ := New("linear", &target, []Step{{Elements: els, Comparisons: 2, Description: "found"}})

	data, err := json.Marshal(tr)
	g.Expect(err).NotTo(HaveOccurred())

	var back Trace
	g.Expect(json.Unmarshal(data, &back)).To(Succeed())
	g.Expect(back.Algorithm()).To(Equal("linear"))
	got, ok := back.Target()
	g.Expect(ok).To(BeTrue())
	g.Expect(got).To(Equal(8))
	g.Expect(back.Last()).To(Equal(tr.Last()))
}

func TestInvalidInputError(t *testing.T) {
	err := Invalid("unknown algorithm \"bogo\"")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err.Error() != `trace: invalid input: unknown algorithm "bogo"` {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
