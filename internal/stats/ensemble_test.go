package stats

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/trace"
)

func TestEnsemble_SortsAgree(t *testing.T) {
	g := NewWithT(t)
	values := []int{64, 34, 25, 12, 22, 11, 90}

	ids := IDsOfKind(algorithms.Sorting)
	g.Expect(ids).To(Equal([]algorithms.ID{
		algorithms.Bubble, algorithms.Quick, algorithms.Merge,
		algorithms.Selection, algorithms.Insertion,
	}))

	out, err := NewEnsemble(ids, nil).Run(context.Background(), values)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(out).To(HaveLen(len(ids)))
	for i, s := range out {
		g.Expect(s.Algorithm).To(Equal(string(ids[i])))
		g.Expect(s.Result["sorted_array"]).To(Equal([]int{11, 12, 22, 25, 34, 64, 90}))
	}
	g.Expect(values).To(Equal([]int{64, 34, 25, 12, 22, 11, 90}))
}

func TestEnsemble_SearchTarget(t *testing.T) {
	g := NewWithT(t)
	target := 15
	values := []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 25, 27, 29, 31}

	out, err := NewEnsemble(IDsOfKind(algorithms.Searching), &target).Run(context.Background(), values)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(out).To(HaveLen(2))
	for _, s := range out {
		g.Expect(s.Result["found"]).To(BeTrue())
		g.Expect(s.Result["position"]).To(Equal(7))
	}
	g.Expect(out[1].Steps).To(BeNumerically("<", out[0].Steps))
}

func TestEnsemble_Errors(t *testing.T) {
	g := NewWithT(t)

	_, err := NewEnsemble([]algorithms.ID{"bogo"}, nil).Run(context.Background(), []int{1})
	g.Expect(err).To(MatchError(trace.ErrInvalidInput))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewEnsemble(IDsOfKind(algorithms.Sorting), nil).Run(ctx, []int{2, 1})
	g.Expect(err).To(MatchError(context.Canceled))
}
