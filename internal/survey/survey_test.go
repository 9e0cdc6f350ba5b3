package survey_test

import (
	"context"
	"math/big"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/twinpal/internal/primality"
	"github.com/san-kum/twinpal/internal/survey"
	"github.com/san-kum/twinpal/internal/twin"
)

var _ = Describe("Run", func() {
	var cfg survey.Config

	BeforeEach(func() {
		cfg = survey.DefaultConfig()
		cfg.MaxLength = 12
	})

	It("records one proportion per length", func() {
		result, err := survey.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Proportions).To(HaveLen(12))
		Expect(result.Stats).To(HaveLen(12))
		for i, stat := range result.Stats {
			Expect(stat.Length).To(Equal(i + 1))
			Expect(stat.Candidates).To(Equal(1 << uint((stat.Length+1)/2)))
		}
	})

	It("finds 6 at length 4 and rejects 9", func() {
		cfg.MinLength, cfg.MaxLength = 4, 4
		result, err := survey.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Middles.Contains(big.NewInt(6))).To(BeTrue())
		Expect(result.Middles.Contains(big.NewInt(9))).To(BeFalse())
		Expect(result.Proportions[4]).To(Equal(0.25))
	})

	It("keeps the twin-prime invariant for every middle", func() {
		result, err := survey.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Middles.Len()).To(BeNumerically(">", 0))

		exact := primality.NewExact(nil)
		one := big.NewInt(1)
		for _, m := range result.Middles.Middles() {
			Expect(exact.IsPrime(new(big.Int).Sub(m.Value, one))).To(BeTrue(), m.Bits)
			Expect(exact.IsPrime(new(big.Int).Add(m.Value, one))).To(BeTrue(), m.Bits)
		}
	})

	It("agrees between the exact and probabilistic oracles", func() {
		probabilistic, err := survey.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())

		cfg.Oracle = primality.KindExact
		exact, err := survey.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())

		Expect(probabilistic.Proportions).To(Equal(exact.Proportions))
		Expect(probabilistic.Middles.Len()).To(Equal(exact.Middles.Len()))
	})

	It("gives the same answer with several workers", func() {
		cfg.MaxLength = 20
		cfg.Oracle = primality.KindExact
		single, err := survey.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())

		cfg.Workers = 4
		multi, err := survey.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())

		Expect(multi.Proportions).To(Equal(single.Proportions))
		Expect(multi.CacheHits).To(BeNumerically(">=", 0))
	})

	It("notifies observers in length order", func() {
		var seen []int
		obs := survey.ObserverFunc(func(stat twin.LengthStat) {
			seen = append(seen, stat.Length)
		})
		cfg.MinLength, cfg.MaxLength = 3, 6
		_, err := survey.Run(context.Background(), cfg, obs)
		Expect(err).NotTo(HaveOccurred())
		Expect(seen).To(Equal([]int{3, 4, 5, 6}))
	})

	It("stops when the context is canceled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		result, err := survey.Run(ctx, cfg)
		Expect(err).To(MatchError(context.Canceled))
		Expect(result.Stats).To(BeEmpty())
	})

	DescribeTable("rejects invalid configs",
		func(mutate func(*survey.Config)) {
			mutate(&cfg)
			_, err := survey.Run(context.Background(), cfg)
			Expect(err).To(MatchError(survey.ErrInvalidConfig))
		},
		Entry("zero min length", func(c *survey.Config) { c.MinLength = 0 }),
		Entry("max below min", func(c *survey.Config) { c.MinLength, c.MaxLength = 5, 4 }),
		Entry("no witnesses", func(c *survey.Config) { c.Witnesses = 0 }),
		Entry("negative cache", func(c *survey.Config) { c.CacheSize = -1 }),
		Entry("unknown oracle", func(c *survey.Config) { c.Oracle = "aks" }),
	)
})
