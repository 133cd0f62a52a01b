package solver_test

import (
	"context"
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/chaosgen/internal/chaos"
	"github.com/san-kum/chaosgen/internal/solver"
)

var _ = Describe("Solve", func() {
	It("finds the golden ratio for period 3", func() {
		rho, err := solver.Solve(3)
		Expect(err).NotTo(HaveOccurred())
		Expect(rho).To(BeNumerically("~", chaos.GoldenRatio, 1e-9))
	})

	It("produces strictly decreasing rates that approach sqrt 2", func() {
		prev := math.Inf(1)
		var last float64
		for p := 3; p <= 41; p += 2 {
			rho, err := solver.Solve(p)
			Expect(err).NotTo(HaveOccurred())
			Expect(rho).To(BeNumerically("<", prev), "period %d", p)
			Expect(rho).To(BeNumerically(">=", chaos.SqrtTwo), "period %d", p)
			Expect(rho).To(BeNumerically("<=", chaos.GoldenRatio+1e-9), "period %d", p)
			prev = rho
			last = rho
		}
		Expect(last - chaos.SqrtTwo).To(BeNumerically("<", 1e-6))
	})

	It("leaves a near-zero polynomial residual", func() {
		for _, p := range []int{3, 5, 9, 15} {
			rho, err := solver.Solve(p)
			Expect(err).NotTo(HaveOccurred())
			c, err := solver.NewCharacteristic(p)
			Expect(err).NotTo(HaveOccurred())
			Expect(math.Abs(c.Eval(rho))).To(BeNumerically("<", 1e-9), "period %d", p)
		}
	})

	It("is deterministic", func() {
		a, err := solver.Solve(7)
		Expect(err).NotTo(HaveOccurred())
		b, err := solver.Solve(7)
		Expect(err).NotTo(HaveOccurred())
		Expect(b).To(Equal(a))
	})

	DescribeTable("rejects invalid periods",
		func(p int) {
			_, err := solver.Solve(p)
			Expect(err).To(MatchError(chaos.ErrInvalidPeriod))
		},
		Entry("one", 1),
		Entry("two", 2),
		Entry("four", 4),
		Entry("zero", 0),
		Entry("negative", -3),
	)
})

var _ = Describe("SolveFrom", func() {
	It("accepts a custom starting guess", func() {
		rho, err := solver.SolveFrom(3, 1.62)
		Expect(err).NotTo(HaveOccurred())
		Expect(rho).To(BeNumerically("~", chaos.GoldenRatio, 1e-9))
	})

	It("returns the magnitude of whichever root the guess reaches", func() {
		rho, err := solver.SolveFrom(3, -0.55)
		Expect(err).NotTo(HaveOccurred())
		Expect(rho).To(BeNumerically("~", chaos.GoldenRatio-1, 1e-9))
	})

	It("reports a ConvergenceError for a guess that breaks the iteration", func() {
		_, err := solver.SolveFrom(5, math.Inf(1))
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, solver.ErrNoConvergence)).To(BeTrue())

		var convErr *solver.ConvergenceError
		Expect(errors.As(err, &convErr)).To(BeTrue())
		Expect(convErr.Period).To(Equal(5))
		Expect(convErr.Guess).To(Equal(math.Inf(1)))
	})

	It("reports a ConvergenceError for a NaN guess", func() {
		_, err := solver.SolveFrom(7, math.NaN())
		var convErr *solver.ConvergenceError
		Expect(errors.As(err, &convErr)).To(BeTrue())
		Expect(convErr.Period).To(Equal(7))
	})
})

var _ = Describe("Bisect", func() {
	It("agrees with the Newton result", func() {
		for _, p := range []int{3, 5, 7, 11} {
			newton, err := solver.Solve(p)
			Expect(err).NotTo(HaveOccurred())
			bisect, err := solver.Bisect(p)
			Expect(err).NotTo(HaveOccurred())
			Expect(bisect).To(BeNumerically("~", newton, 1e-9), "period %d", p)
		}
	})

	It("rejects invalid periods", func() {
		_, err := solver.Bisect(6)
		Expect(err).To(MatchError(chaos.ErrInvalidPeriod))
	})
})

var _ = Describe("AllRoots", func() {
	It("returns one eigenvalue per degree", func() {
		roots, err := solver.AllRoots(7)
		Expect(err).NotTo(HaveOccurred())
		Expect(roots).To(HaveLen(7))
	})

	It("always contains -1 and the dominant rate", func() {
		for _, p := range []int{3, 5, 9} {
			rho, err := solver.Solve(p)
			Expect(err).NotTo(HaveOccurred())
			reals, err := solver.RealRoots(p)
			Expect(err).NotTo(HaveOccurred())

			Expect(reals[0]).To(BeNumerically("<=", -1+1e-9))
			foundMinusOne := false
			for _, r := range reals {
				if math.Abs(r+1) < 1e-9 {
					foundMinusOne = true
				}
			}
			Expect(foundMinusOne).To(BeTrue(), "period %d", p)
			Expect(reals[len(reals)-1]).To(BeNumerically("~", rho, 1e-9), "period %d", p)
		}
	})

	It("resolves the full period-3 real spectrum", func() {
		reals, err := solver.RealRoots(3)
		Expect(err).NotTo(HaveOccurred())
		Expect(reals).To(HaveLen(3))
		Expect(reals[0]).To(BeNumerically("~", -1, 1e-9))
		Expect(reals[1]).To(BeNumerically("~", 1-chaos.GoldenRatio, 1e-9))
		Expect(reals[2]).To(BeNumerically("~", chaos.GoldenRatio, 1e-9))
	})
})

var _ = Describe("SolveRange", func() {
	It("matches the sequential results in order", func() {
		periods := []int{3, 5, 7, 9}
		got, err := solver.SolveRange(context.Background(), periods)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(HaveLen(len(periods)))

		for i, p := range periods {
			want, err := solver.Solve(p)
			Expect(err).NotTo(HaveOccurred())
			Expect(got[i]).To(Equal(want))
		}
	})

	It("fails fast on an invalid period in the list", func() {
		_, err := solver.SolveRange(context.Background(), []int{3, 4, 5})
		Expect(err).To(MatchError(chaos.ErrInvalidPeriod))
	})

	It("respects context cancellation", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := solver.SolveRange(ctx, []int{3, 5, 7})
		Expect(err).To(MatchError(context.Canceled))
	})
})

var _ = Describe("OddPeriods", func() {
	It("lists odd periods from 3 upward", func() {
		Expect(solver.OddPeriods(9)).To(Equal([]int{3, 5, 7, 9}))
		Expect(solver.OddPeriods(10)).To(Equal([]int{3, 5, 7, 9}))
		Expect(solver.OddPeriods(2)).To(BeEmpty())
	})
})
