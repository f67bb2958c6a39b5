package config_test

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internalconfig "github.com/towelWet/TowelHost/internal/config"
	"github.com/towelWet/TowelHost/internal/xdg"
)

var _ = Describe("KoanfLoader", func() {
	var (
		homeDir string
		appDir  string
		sidecar string
		loader  *internalconfig.KoanfLoader
	)

	writeFile := func(path, content string, mode os.FileMode) {
		Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
		Expect(os.WriteFile(path, []byte(content), mode)).To(Succeed())
		Expect(os.Chmod(path, mode)).To(Succeed())
	}

	BeforeEach(func() {
		homeDir = GinkgoT().TempDir()
		appDir = GinkgoT().TempDir()
		sidecar = filepath.Join(appDir, "Reverb.toml")
		loader = internalconfig.NewKoanfLoaderWithResolver(xdg.ResolverFor(homeDir), sidecar)

		for _, key := range []string{
			"TOWELHOST_LOG_FILE",
			"TOWELHOST_TRIAL_SAMPLE_RATE",
			"TOWELHOST_AUDIO_SAMPLE_RATE",
			"TOWELHOST_AUDIO_BLOCK_SIZE",
			"TOWELHOST_HOST_PLUGIN",
		} {
			GinkgoT().Setenv(key, "")
			Expect(os.Unsetenv(key)).To(Succeed())
		}
	})

	Context("with no files", func() {
		It("should return defaults", func() {
			cfg, err := loader.Load(nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(cfg.GetHost().PlaceholderName).To(Equal("TowelHost"))
			Expect(cfg.GetSearch().Extension).To(Equal(".component"))
			Expect(cfg.GetTrial().SampleRate).To(Equal(44100.0))
			Expect(cfg.GetTrial().BlockSize).To(Equal(512))
			Expect(cfg.GetAudio().GetInputs()).To(Equal(2))
			Expect(cfg.GetAudio().GetOutputs()).To(Equal(2))
			Expect(loader.Sources()).To(BeEmpty())
		})
	})

	Context("with a global config", func() {
		BeforeEach(func() {
			writeFile(loader.GlobalConfigPath(), `
[search]
user_dir = "/opt/plugins"

[trial]
block_size = 1024
`, 0o600)
		})

		It("should overlay the defaults", func() {
			cfg, err := loader.Load(nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(cfg.GetSearch().UserDir).To(Equal("/opt/plugins"))
			Expect(cfg.GetSearch().Extension).To(Equal(".component"))
			Expect(cfg.GetTrial().BlockSize).To(Equal(1024))
			Expect(loader.Sources()).To(Equal([]string{loader.GlobalConfigPath()}))
		})

		It("should be overridden by the sidecar file", func() {
			writeFile(sidecar, `
[trial]
block_size = 256
`, 0o600)

			cfg, err := loader.Load(nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(cfg.GetTrial().BlockSize).To(Equal(256))
			Expect(cfg.GetSearch().UserDir).To(Equal("/opt/plugins"))
		})

		It("should be overridden by environment variables", func() {
			GinkgoT().Setenv("TOWELHOST_TRIAL_BLOCK_SIZE", "128")
			GinkgoT().Setenv("TOWELHOST_HOST_PLUGIN", "Delay")

			cfg, err := loader.Load(nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(cfg.GetTrial().BlockSize).To(Equal(128))
			Expect(cfg.GetHost().Plugin).To(Equal("Delay"))
		})

		It("should accept sample rates with a unit", func() {
			GinkgoT().Setenv("TOWELHOST_AUDIO_SAMPLE_RATE", "48k")
			GinkgoT().Setenv("TOWELHOST_TRIAL_SAMPLE_RATE", "88.2kHz")

			cfg, err := loader.Load(nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(cfg.GetAudio().SampleRate).To(Equal(48000.0))
			Expect(cfg.GetTrial().SampleRate).To(BeNumerically("~", 88200.0, 1e-6))
		})

		It("should reject a malformed sample rate", func() {
			GinkgoT().Setenv("TOWELHOST_AUDIO_SAMPLE_RATE", "fast")

			_, err := loader.Load(nil)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(`invalid sample rate "fast"`))
		})

		It("should give flags the last word", func() {
			GinkgoT().Setenv("TOWELHOST_HOST_PLUGIN", "Delay")

			cfg, err := loader.Load(map[string]any{
				"plugin":     "Chorus",
				"block-size": 64,
				"debug":      true,
				"unknown":    "ignored",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(cfg.GetHost().Plugin).To(Equal("Chorus"))
			Expect(cfg.GetAudio().BlockSize).To(Equal(64))
			Expect(cfg.GetLog().Debug).To(BeTrue())
		})
	})

	Context("with insecure permissions", func() {
		It("should reject a world-writable config", func() {
			writeFile(loader.GlobalConfigPath(), "[trial]\nblock_size = 1024\n", 0o666)

			_, err := loader.Load(nil)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, internalconfig.ErrInvalidPermissions)).To(BeTrue())
		})
	})

	Context("with broken TOML", func() {
		It("should report the file", func() {
			writeFile(sidecar, "[trial\nblock_size = ", 0o600)

			_, err := loader.Load(nil)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, internalconfig.ErrInvalidTOML)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring(sidecar))
		})
	})

	Context("with invalid values", func() {
		It("should fail validation", func() {
			writeFile(sidecar, "[audio]\nblock_size = -5\n", 0o600)

			_, err := loader.Load(nil)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, internalconfig.ErrInvalidConfig)).To(BeTrue())
		})

		It("should load them without validation", func() {
			writeFile(sidecar, "[audio]\nblock_size = -5\n", 0o600)

			cfg, err := loader.LoadWithoutValidation(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.GetAudio().BlockSize).To(Equal(-5))
		})
	})
})

var _ = DescribeTable("ParseSampleRate",
	func(in string, want float64) {
		got, err := internalconfig.ParseSampleRate(in)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(BeNumerically("~", want, 1e-6))
	},
	Entry("plain", "44100", 44100.0),
	Entry("hertz", "96000 Hz", 96000.0),
	Entry("kilo", "48k", 48000.0),
	Entry("kilohertz", "44.1kHz", 44100.0),
	Entry("upper case", "192KHZ", 192000.0),
)

var _ = Describe("ParseSampleRate errors", func() {
	It("should mark unparsable input", func() {
		_, err := internalconfig.ParseSampleRate("kHz")

		Expect(errors.Is(err, internalconfig.ErrInvalidSampleRate)).To(BeTrue())
	})
})
