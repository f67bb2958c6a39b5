package plugin_test

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/towelWet/TowelHost/internal/plugin"
	"github.com/towelWet/TowelHost/internal/search"
	"github.com/towelWet/TowelHost/pkg/logger"
)

var _ = Describe("Resolver", func() {
	var (
		dirs     tierDirs
		resolver *plugin.Resolver
	)

	BeforeEach(func() {
		dirs = newTierDirs()
		gen := search.NewGenerator(
			search.Dirs{App: dirs.app, User: dirs.user, System: dirs.system},
			".component",
			nil,
		)
		resolver = plugin.NewResolver(gen, logger.NewNoOpLogger())
	})

	It("should reject an empty name", func() {
		_, err := resolver.Resolve("  ")

		Expect(errors.Is(err, plugin.ErrNameUndetermined)).To(BeTrue())
	})

	It("should resolve a bundle next to the app", func() {
		path := makeBundle(dirs.app, "Reverb.component")

		bundle, err := resolver.Resolve("Reverb")
		Expect(err).NotTo(HaveOccurred())

		Expect(bundle.Path).To(Equal(path))
		Expect(bundle.Name).To(Equal("Reverb"))
		Expect(bundle.ChildCount).To(Equal(1))
		Expect(bundle.Candidate.Tier).To(Equal(search.TierApp))
		Expect(bundle.Candidate.Variant).To(Equal(search.VariantExtension))
	})

	It("should resolve a multi-file package subfolder", func() {
		path := makeBundle(filepath.Join(dirs.user, "Reverb"), "Reverb.component")

		bundle, err := resolver.Resolve("Reverb.component")
		Expect(err).NotTo(HaveOccurred())
		Expect(bundle.Path).To(Equal(path))
		Expect(bundle.Name).To(Equal("Reverb"))
		Expect(bundle.Candidate.Tier).To(Equal(search.TierUser))
		Expect(bundle.Candidate.Variant).To(Equal(search.VariantSubfolder))
	})

	DescribeTable("tier priority",
		func(inApp, inUser, inSystem bool, want search.Tier) {
			if inApp {
				makeBundle(dirs.app, "Reverb.component")
			}

			if inUser {
				makeBundle(dirs.user, "Reverb.component")
			}

			if inSystem {
				makeBundle(dirs.system, "Reverb.component")
			}

			bundle, err := resolver.Resolve("Reverb")
			Expect(err).NotTo(HaveOccurred())
			Expect(bundle.Candidate.Tier).To(Equal(want))
		},
		Entry("app only", true, false, false, search.TierApp),
		Entry("user only", false, true, false, search.TierUser),
		Entry("system only", false, false, true, search.TierSystem),
		Entry("app and user", true, true, false, search.TierApp),
		Entry("app and system", true, false, true, search.TierApp),
		Entry("user and system", false, true, true, search.TierUser),
		Entry("all tiers", true, true, true, search.TierApp),
	)

	It("should recover from a case mismatch through the scan", func() {
		path := makeBundle(dirs.system, "ReVerb.Component")

		bundle, err := resolver.Resolve("REVERB")
		Expect(err).NotTo(HaveOccurred())

		Expect(bundle.Path).To(Equal(path))
		Expect(bundle.Candidate.Variant).To(Equal(search.VariantScan))
	})

	It("should find a lower-case bundle from a mixed-case name", func() {
		path := makeBundle(dirs.user, "reverb.component")

		bundle, err := resolver.Resolve("Reverb")
		Expect(err).NotTo(HaveOccurred())
		Expect(bundle.Path).To(Equal(path))
		Expect(bundle.Candidate.Variant).To(Equal(search.VariantLowerExtension))
	})

	It("should use an absolute path directly", func() {
		path := makeBundle(dirs.root, "Elsewhere.component")

		bundle, err := resolver.Resolve(path)
		Expect(err).NotTo(HaveOccurred())

		Expect(bundle.Path).To(Equal(path))
		Expect(bundle.Name).To(Equal("Elsewhere"))
		Expect(bundle.Candidate.Tier).To(Equal(search.TierDirect))
	})

	It("should not search the tiers for a missing absolute path", func() {
		makeBundle(dirs.app, "Missing.component")

		_, err := resolver.Resolve(filepath.Join(dirs.root, "Missing.component"))
		Expect(errors.Is(err, plugin.ErrNotFound)).To(BeTrue())
	})

	Context("when nothing matches", func() {
		It("should list the searched roots", func() {
			_, err := resolver.Resolve("Reverb")

			Expect(errors.Is(err, plugin.ErrNotFound)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring(dirs.app))
			Expect(err.Error()).To(ContainSubstring(dirs.user))
			Expect(err.Error()).To(ContainSubstring(dirs.system))

			var nf *plugin.NotFoundError
			Expect(errors.As(err, &nf)).To(BeTrue())
			Expect(nf.Name).To(Equal("Reverb"))
			Expect(nf.Attempted).To(HaveLen(18))
			Expect(nf.Attempted[0].Path).To(Equal(filepath.Join(dirs.app, "Reverb")))
		})

		It("should hint at placing the bundle next to the app", func() {
			_, err := resolver.Resolve("Reverb")

			Expect(plugin.FormatError(err)).To(ContainSubstring("Place the .component bundle next to the renamed app."))
		})
	})

	It("should reject a plain file as not a bundle", func() {
		Expect(os.WriteFile(filepath.Join(dirs.app, "Reverb.component"), []byte("binary"), 0o644)).To(Succeed())

		_, err := resolver.Resolve("Reverb")

		Expect(errors.Is(err, plugin.ErrNotABundle)).To(BeTrue())
		Expect(errors.Is(err, plugin.ErrNotFound)).To(BeFalse())
	})

	It("should accept an empty bundle", func() {
		Expect(os.MkdirAll(filepath.Join(dirs.app, "Empty.component"), 0o755)).To(Succeed())

		bundle, err := resolver.Resolve("Empty")
		Expect(err).NotTo(HaveOccurred())
		Expect(bundle.ChildCount).To(BeZero())
	})

	It("should measure the bundle", func() {
		makeBundle(dirs.app, "Reverb.component")

		bundle, err := resolver.Resolve("Reverb")
		Expect(err).NotTo(HaveOccurred())

		size, files, err := bundle.DiskUsage()
		Expect(err).NotTo(HaveOccurred())
		Expect(files).To(Equal(1))
		Expect(size).To(Equal(int64(len("# empty\n"))))
	})
})
