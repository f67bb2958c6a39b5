package plugin_test

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	hostplugin "github.com/towelWet/TowelHost/internal/plugin"
)

var _ = Describe("ValidateContained", func() {
	var bundle string

	BeforeEach(func() {
		bundle = makeBundle(GinkgoT().TempDir(), "Reverb.component")
		Expect(os.MkdirAll(filepath.Join(bundle, "Contents", "MacOS"), 0o755)).To(Succeed())
	})

	It("should resolve a path inside the bundle", func() {
		path, err := hostplugin.ValidateContained(bundle, "Contents/MacOS/Reverb.so")

		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(HaveSuffix(filepath.Join("Contents", "MacOS", "Reverb.so")))
	})

	It("should reject traversal", func() {
		_, err := hostplugin.ValidateContained(bundle, "Contents/../../Other.component/x.so")

		Expect(errors.Is(err, hostplugin.ErrPathTraversal)).To(BeTrue())
	})

	It("should reject absolute paths", func() {
		_, err := hostplugin.ValidateContained(bundle, "/usr/lib/x.so")

		Expect(errors.Is(err, hostplugin.ErrPathTraversal)).To(BeTrue())
	})

	It("should reject a symlink leaving the bundle", func() {
		outside := filepath.Join(GinkgoT().TempDir(), "evil.so")
		Expect(os.WriteFile(outside, []byte("x"), 0o644)).To(Succeed())
		Expect(os.Symlink(outside, filepath.Join(bundle, "Contents", "MacOS", "Reverb.so"))).To(Succeed())

		_, err := hostplugin.ValidateContained(bundle, "Contents/MacOS/Reverb.so")

		Expect(errors.Is(err, hostplugin.ErrPathNotAllowed)).To(BeTrue())
	})

	It("should require a path", func() {
		_, err := hostplugin.ValidateContained(bundle, "")

		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("ValidateExtension", func() {
	It("should accept any case", func() {
		Expect(hostplugin.ValidateExtension("Reverb.SO", []string{".so"})).To(Succeed())
	})

	It("should reject other extensions", func() {
		err := hostplugin.ValidateExtension("Reverb.dylib", []string{".so"})

		Expect(errors.Is(err, hostplugin.ErrInvalidExtension)).To(BeTrue())
	})

	It("should reject a missing extension", func() {
		err := hostplugin.ValidateExtension("Reverb", []string{".so"})

		Expect(errors.Is(err, hostplugin.ErrInvalidExtension)).To(BeTrue())
	})

	It("should allow everything without a list", func() {
		Expect(hostplugin.ValidateExtension("Reverb", nil)).To(Succeed())
	})
})

var _ = Describe("PanicError", func() {
	It("should mark the error and hide paths", func() {
		err := hostplugin.PanicError("open /Users/me/secret/plugin.so: denied", "instantiation")

		Expect(errors.Is(err, hostplugin.ErrPluginPanicked)).To(BeTrue())
		Expect(err.Error()).To(Equal("plugin panicked during instantiation: open [path]: denied"))
	})

	It("should truncate long values", func() {
		msg := hostplugin.SanitizePanicMessage(strings.Repeat("x", 500))

		Expect(msg).To(HaveLen(203))
		Expect(msg).To(HaveSuffix("..."))
	})
})
