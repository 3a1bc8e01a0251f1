package playback

import (
	"io"
	"log/slog"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/input"
	"github.com/san-kum/algoviz/internal/trace"
)

var textbook = []int{64, 34, 25, 12, 22}

var _ = Describe("Session", func() {
	var (
		sched *manualScheduler
		in    *input.Manager
		s     *Session
	)

	newSession := func(values []int, id algorithms.ID, opts ...Option) {
		sched = &manualScheduler{}
		in = input.FromValues(values, 1)
		opts = append([]Option{
			WithScheduler(sched),
			WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		}, opts...)
		var err error
		s, err = NewSession(in, id, opts...)
		Expect(err).NotTo(HaveOccurred())
	}

	tick := func() { sched.Advance(Interval(s.Snapshot().Speed)) }

	runToEnd := func() {
		for i := 0; i < 1000 && s.State() == Running; i++ {
			tick()
		}
	}

	BeforeEach(func() {
		newSession(textbook, algorithms.Bubble)
	})

	It("rejects unknown algorithms", func() {
		_, err := NewSession(input.FromValues(textbook, 1), algorithms.ID("bogo"))
		Expect(err).To(MatchError(trace.ErrInvalidInput))
	})

	Describe("initial state", func() {
		It("is idle over the working array", func() {
			snap := s.Snapshot()
			Expect(snap.State).To(Equal(Idle))
			Expect(snap.HasTrace).To(BeFalse())
			Expect(snap.Index).To(BeZero())
			Expect(snap.Speed).To(Equal(DefaultSpeed))
			Expect(snap.Step.Values()).To(Equal(textbook))
			Expect(snap.Step.Comparisons).To(BeZero())
			Expect(s.Trace()).To(BeNil())
			Expect(sched.Active()).To(BeZero())
		})
	})

	Describe("Play", func() {
		It("generates a trace and starts running from idle", func() {
			Expect(s.Play()).To(Succeed())

			snap := s.Snapshot()
			Expect(snap.State).To(Equal(Running))
			Expect(snap.Index).To(BeZero())
			Expect(snap.Len).To(Equal(20))
			Expect(sched.Active()).To(Equal(1))
		})

		It("advances exactly one step per tick", func() {
			Expect(s.Play()).To(Succeed())

			sched.Advance(Interval(DefaultSpeed) - time.Millisecond)
			Expect(s.Snapshot().Index).To(BeZero())

			sched.Advance(time.Millisecond)
			Expect(s.Snapshot().Index).To(Equal(1))

			tick()
			Expect(s.Snapshot().Index).To(Equal(2))
			Expect(sched.Active()).To(Equal(1))
		})

		It("completes on the last step and disarms the timer", func() {
			Expect(s.Play()).To(Succeed())
			runToEnd()

			snap := s.Snapshot()
			Expect(snap.State).To(Equal(Completed))
			Expect(snap.AtEnd()).To(BeTrue())
			Expect(snap.Step.Values()).To(Equal([]int{12, 22, 25, 34, 64}))
			Expect(sched.Active()).To(BeZero())

			tick()
			Expect(s.Snapshot().Index).To(Equal(snap.Index))
		})

		It("completes a single-step trace on its first tick", func() {
			newSession([]int{5}, algorithms.Linear)
			Expect(s.Play()).To(Succeed())
			Expect(s.State()).To(Equal(Running))

			tick()
			Expect(s.State()).To(Equal(Completed))
			Expect(s.Snapshot().Step.Flagged(trace.Found)).To(Equal([]int{0}))
		})

		It("toggles to paused while running and stops advancing", func() {
			Expect(s.Play()).To(Succeed())
			tick()
			Expect(s.Play()).To(Succeed())

			Expect(s.State()).To(Equal(Paused))
			Expect(sched.Active()).To(BeZero())

			sched.Advance(10 * time.Second)
			Expect(s.Snapshot().Index).To(Equal(1))
		})

		It("resumes from paused without regenerating the trace", func() {
			Expect(s.Play()).To(Succeed())
			tick()
			first := s.Trace()
			s.Pause()

			Expect(s.Play()).To(Succeed())
			Expect(s.State()).To(Equal(Running))
			Expect(s.Trace()).To(BeIdenticalTo(first))
			Expect(s.Snapshot().Index).To(Equal(1))

			tick()
			Expect(s.Snapshot().Index).To(Equal(2))
		})

		It("is a no-op once completed", func() {
			Expect(s.Play()).To(Succeed())
			runToEnd()
			before := s.Snapshot()

			Expect(s.Play()).To(Succeed())
			Expect(s.Snapshot()).To(Equal(before))
			Expect(sched.Active()).To(BeZero())
		})

		It("ignores callbacks that were in flight when paused", func() {
			Expect(s.Play()).To(Succeed())
			stale := sched.Latest()
			s.Pause()

			stale()
			Expect(s.Snapshot().Index).To(BeZero())
			Expect(s.State()).To(Equal(Paused))
		})
	})

	Describe("StepForward", func() {
		It("is ignored while running", func() {
			Expect(s.Play()).To(Succeed())
			Expect(s.StepForward()).To(Succeed())
			Expect(s.Snapshot().Index).To(BeZero())
		})

		It("advances one step while paused", func() {
			Expect(s.Play()).To(Succeed())
			s.Pause()

			Expect(s.StepForward()).To(Succeed())
			Expect(s.StepForward()).To(Succeed())
			Expect(s.Snapshot().Index).To(Equal(2))
			Expect(s.State()).To(Equal(Paused))
			Expect(sched.Active()).To(BeZero())
		})

		It("stays paused at the last step", func() {
			Expect(s.JumpTo(100)).To(Succeed())
			last := s.Snapshot().Index

			Expect(s.StepForward()).To(Succeed())
			Expect(s.Snapshot().Index).To(Equal(last))
			Expect(s.State()).To(Equal(Paused))
		})

		It("is a no-op when completed", func() {
			Expect(s.Play()).To(Succeed())
			runToEnd()
			Expect(s.StepForward()).To(Succeed())
			Expect(s.State()).To(Equal(Completed))
		})

		It("parks on the first step when idle", func() {
			Expect(s.StepForward()).To(Succeed())
			snap := s.Snapshot()
			Expect(snap.State).To(Equal(Paused))
			Expect(snap.HasTrace).To(BeTrue())
			Expect(snap.Index).To(BeZero())
		})
	})

	Describe("JumpTo", func() {
		DescribeTable("clamps and pauses",
			func(target, want int) {
				Expect(s.Play()).To(Succeed())
				Expect(s.JumpTo(target)).To(Succeed())

				snap := s.Snapshot()
				Expect(snap.Index).To(Equal(want))
				Expect(snap.State).To(Equal(Paused))
				Expect(sched.Active()).To(BeZero())
			},
			Entry("below range", -7, 0),
			Entry("first", 0, 0),
			Entry("inside", 5, 5),
			Entry("last", 19, 19),
			Entry("above range", 500, 19),
		)

		It("reproduces the recorded step exactly", func() {
			Expect(s.Play()).To(Succeed())
			runToEnd()
			want := s.Trace().At(3)

			Expect(s.JumpTo(3)).To(Succeed())
			Expect(s.Snapshot().Step).To(Equal(want))
			Expect(s.State()).To(Equal(Paused))
		})

		It("pauses a completed session", func() {
			Expect(s.Play()).To(Succeed())
			runToEnd()
			Expect(s.JumpTo(0)).To(Succeed())
			Expect(s.State()).To(Equal(Paused))

			Expect(s.Play()).To(Succeed())
			tick()
			Expect(s.Snapshot().Index).To(Equal(1))
		})

		It("generates the trace when idle", func() {
			Expect(s.JumpTo(2)).To(Succeed())
			Expect(s.State()).To(Equal(Paused))
			Expect(s.Snapshot().Index).To(Equal(2))
		})
	})

	Describe("Reset", func() {
		DescribeTable("returns to idle from any state",
			func(prepare func()) {
				prepare()
				s.Reset()

				snap := s.Snapshot()
				Expect(snap.State).To(Equal(Idle))
				Expect(snap.Index).To(BeZero())
				Expect(snap.HasTrace).To(BeFalse())
				Expect(snap.Step.Values()).To(Equal(textbook))
				Expect(snap.Step.Comparisons).To(BeZero())
				Expect(snap.Step.Swaps).To(BeZero())
				Expect(in.Working()).To(Equal(in.Original()))
				Expect(sched.Active()).To(BeZero())
			},
			Entry("idle", func() {}),
			Entry("running", func() {
				Expect(s.Play()).To(Succeed())
				tick()
			}),
			Entry("paused", func() {
				Expect(s.Play()).To(Succeed())
				tick()
				s.Pause()
			}),
			Entry("completed", func() {
				Expect(s.Play()).To(Succeed())
				runToEnd()
			}),
		)

		It("allows a fresh run afterwards", func() {
			Expect(s.Play()).To(Succeed())
			first := s.Trace()
			s.Reset()

			Expect(s.Play()).To(Succeed())
			Expect(s.Trace()).NotTo(BeIdenticalTo(first))
			Expect(s.Snapshot().Index).To(BeZero())
		})
	})

	Describe("SetSpeed", func() {
		It("clamps out-of-range values", func() {
			s.SetSpeed(0)
			Expect(s.Snapshot().Speed).To(Equal(MinSpeed))
			s.SetSpeed(1000)
			Expect(s.Snapshot().Speed).To(Equal(MaxSpeed))
		})

		It("keeps a single timer when changed while running", func() {
			Expect(s.Play()).To(Succeed())
			sched.Advance(300 * time.Millisecond)

			s.SetSpeed(100)
			Expect(sched.Active()).To(Equal(1))

			// 100ms period from t=300ms: ticks at 400, 500, 600ms
			sched.Advance(300 * time.Millisecond)
			Expect(s.Snapshot().Index).To(Equal(3))
			Expect(sched.Active()).To(Equal(1))

			for i := 0; i < 5; i++ {
				sched.Advance(Interval(100))
				Expect(s.Snapshot().Index).To(Equal(4 + i))
			}
		})

		It("does not arm a timer when not running", func() {
			s.SetSpeed(80)
			Expect(sched.Active()).To(BeZero())
			Expect(s.State()).To(Equal(Idle))
		})
	})

	Describe("input changes", func() {
		It("regenerating while running cancels the timer and resets", func() {
			Expect(s.Play()).To(Succeed())
			tick()

			s.Regenerate(8)
			Expect(s.State()).To(Equal(Idle))
			Expect(sched.Active()).To(BeZero())
			Expect(s.Snapshot().Step.Elements).To(HaveLen(8))

			sched.Advance(10 * time.Second)
			Expect(s.Snapshot().Index).To(BeZero())
		})

		It("applies custom input and resets", func() {
			Expect(s.Play()).To(Succeed())
			Expect(s.ApplyCustom("3, 1, 2")).To(BeTrue())

			Expect(s.State()).To(Equal(Idle))
			Expect(s.Snapshot().Step.Values()).To(Equal([]int{3, 1, 2}))
			Expect(sched.Active()).To(BeZero())

			s.Reset()
			Expect(s.Snapshot().Step.Values()).To(Equal([]int{3, 1, 2}))
		})

		It("leaves everything untouched when custom input has no numbers", func() {
			Expect(s.Play()).To(Succeed())
			Expect(s.ApplyCustom("x, y")).To(BeFalse())

			Expect(s.State()).To(Equal(Running))
			Expect(sched.Active()).To(Equal(1))
			Expect(in.Values()).To(Equal(textbook))
		})
	})

	Describe("searching", func() {
		It("uses the configured target", func() {
			newSession([]int{5, 3, 8, 1}, algorithms.Linear, WithTarget(8))
			Expect(s.Play()).To(Succeed())
			runToEnd()

			last := s.Snapshot().Step
			Expect(last.Comparisons).To(Equal(3))
			Expect(last.Flagged(trace.Found)).To(Equal([]int{2}))
		})

		It("falls back to the first element for non-numeric targets", func() {
			newSession([]int{5, 3, 8, 1}, algorithms.Linear)
			s.SetTarget("eight")
			_, ok := s.Target()
			Expect(ok).To(BeFalse())

			Expect(s.Play()).To(Succeed())
			target, _ := s.Trace().Target()
			Expect(target).To(Equal(5))
		})

		It("reads the leading integer of a typed target", func() {
			newSession([]int{5, 3, 8, 1}, algorithms.Linear)
			s.SetTarget(" 8th")
			target, ok := s.Target()
			Expect(ok).To(BeTrue())
			Expect(target).To(Equal(8))

			Expect(s.Play()).To(Succeed())
			got, _ := s.Trace().Target()
			Expect(got).To(Equal(8))
		})

		It("switches algorithm and resets", func() {
			Expect(s.Play()).To(Succeed())
			Expect(s.SetAlgorithm(algorithms.Binary)).To(Succeed())
			Expect(s.State()).To(Equal(Idle))
			Expect(s.Algorithm()).To(Equal(algorithms.Binary))
			Expect(sched.Active()).To(BeZero())

			Expect(s.SetAlgorithm("bogo")).To(MatchError(trace.ErrInvalidInput))
		})
	})

	Describe("observers", func() {
		It("receive a snapshot for manual and automatic transitions", func() {
			var seen []Snapshot
			s.OnChange(func(snap Snapshot) { seen = append(seen, snap) })

			Expect(s.Play()).To(Succeed())
			tick()
			s.Pause()

			Expect(seen).To(HaveLen(3))
			Expect(seen[0].State).To(Equal(Running))
			Expect(seen[1].Index).To(Equal(1))
			Expect(seen[2].State).To(Equal(Paused))
		})
	})

	Describe("Close", func() {
		It("disarms the timer", func() {
			Expect(s.Play()).To(Succeed())
			s.Close()
			Expect(sched.Active()).To(BeZero())
			Expect(s.State()).To(Equal(Paused))
		})
	})
})
