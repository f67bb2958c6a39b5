package config_test

import (
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internalconfig "github.com/towelWet/TowelHost/internal/config"
	"github.com/towelWet/TowelHost/pkg/config"
)

var _ = Describe("Validator", func() {
	var validator *internalconfig.Validator

	BeforeEach(func() {
		validator = internalconfig.NewValidator()
	})

	It("should reject a nil config", func() {
		err := validator.Validate(nil)

		Expect(errors.Is(err, internalconfig.ErrInvalidConfig)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("config is nil"))
	})

	It("should accept empty and default configs", func() {
		Expect(validator.Validate(&config.Config{})).To(Succeed())
		Expect(validator.Validate(internalconfig.DefaultConfig())).To(Succeed())
	})

	DescribeTable("invalid values",
		func(cfg *config.Config, sentinel error) {
			err := validator.Validate(cfg)

			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, internalconfig.ErrInvalidConfig)).To(BeTrue())
			Expect(errors.Is(err, sentinel)).To(BeTrue())
		},
		Entry("negative trial rate",
			&config.Config{Trial: &config.TrialConfig{SampleRate: -1}},
			internalconfig.ErrOutOfRange),
		Entry("huge block size",
			&config.Config{Audio: &config.AudioConfig{BlockSize: 1 << 20}},
			internalconfig.ErrOutOfRange),
		Entry("too many channels",
			&config.Config{Audio: &config.AudioConfig{Outputs: ptr(65)}},
			internalconfig.ErrOutOfRange),
		Entry("glob in extension",
			&config.Config{Search: &config.SearchConfig{Extension: ".comp*"}},
			internalconfig.ErrInvalidExtension),
		Entry("bare dot extension",
			&config.Config{Search: &config.SearchConfig{Extension: "."}},
			internalconfig.ErrInvalidExtension),
		Entry("unbalanced pattern",
			&config.Config{Search: &config.SearchConfig{Patterns: []string{"*.{component"}}},
			internalconfig.ErrInvalidPattern),
	)

	It("should accept brace alternation patterns", func() {
		cfg := &config.Config{Search: &config.SearchConfig{Patterns: []string{"*.{component,bundle}"}}}

		Expect(validator.Validate(cfg)).To(Succeed())
	})
})

func ptr[T any](v T) *T {
	return &v
}
