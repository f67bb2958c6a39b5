package plugin_test

import (
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/towelWet/TowelHost/internal/plugin"
	"github.com/towelWet/TowelHost/internal/search"
	"github.com/towelWet/TowelHost/pkg/logger"
	api "github.com/towelWet/TowelHost/pkg/plugin"
)

var _ = Describe("Loader", func() {
	var (
		ctrl     *gomock.Controller
		format   *api.MockFormat
		instance *api.MockInstance
		dirs     tierDirs
		loader   *plugin.Loader
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		format = api.NewMockFormat(ctrl)
		instance = api.NewMockInstance(ctrl)

		format.EXPECT().Name().Return(formatName).AnyTimes()
		instance.EXPECT().Name().Return("Reverb").AnyTimes()

		dirs = newTierDirs()
		gen := search.NewGenerator(
			search.Dirs{App: dirs.app, User: dirs.user, System: dirs.system},
			".component",
			nil,
		)

		loader = plugin.NewLoader(
			format,
			gen,
			plugin.Trial{SampleRate: 44100, BlockSize: 512},
			logger.NewNoOpLogger(),
		)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("should load a valid bundle and leave no error", func() {
		path := makeBundle(dirs.app, "Reverb.component")
		desc := api.Descriptor{Name: "Reverb", FormatName: formatName, FileOrIdentifier: path}

		format.EXPECT().Discover(path).Return([]api.Descriptor{desc}, nil)
		format.EXPECT().Instantiate(desc, 44100.0, 512).Return(instance, nil)

		inst, err := loader.LoadPlugin("Reverb")

		Expect(err).NotTo(HaveOccurred())
		Expect(inst).To(BeIdenticalTo(instance))
		Expect(loader.LastError()).To(BeEmpty())
	})

	It("should keep a displayable message for a missing bundle", func() {
		_, err := loader.LoadPlugin("Reverb")

		Expect(errors.Is(err, plugin.ErrNotFound)).To(BeTrue())
		Expect(loader.LastError()).To(ContainSubstring(`could not find plugin "Reverb"`))
		Expect(loader.LastError()).To(ContainSubstring(dirs.user))
		Expect(loader.LastError()).To(ContainSubstring("Place the .component bundle next to the renamed app."))
	})

	It("should clear the last error on the next success", func() {
		_, err := loader.LoadPlugin("Reverb")
		Expect(err).To(HaveOccurred())
		Expect(loader.LastError()).NotTo(BeEmpty())

		path := makeBundle(dirs.user, "Reverb.component")
		format.EXPECT().Discover(path).Return(nil, nil)
		format.EXPECT().Instantiate(gomock.Any(), gomock.Any(), gomock.Any()).Return(instance, nil)

		_, err = loader.LoadPlugin("Reverb")

		Expect(err).NotTo(HaveOccurred())
		Expect(loader.LastError()).To(BeEmpty())
	})

	It("should name the bundle when instantiation fails", func() {
		path := makeBundle(dirs.system, "Reverb.component")

		format.EXPECT().Discover(path).Return(nil, nil)
		format.EXPECT().Instantiate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("code signature invalid")).Times(2)

		_, err := loader.LoadPlugin("Reverb")

		Expect(errors.Is(err, plugin.ErrInstantiationFailed)).To(BeTrue())
		Expect(err.Error()).To(HavePrefix(path))
		Expect(loader.LastError()).To(ContainSubstring("code signature invalid"))
		Expect(loader.LastError()).To(ContainSubstring("com.apple.quarantine"))
	})

	It("should create a new instance per call", func() {
		path := makeBundle(dirs.app, "Reverb.component")
		other := api.NewMockInstance(ctrl)
		other.EXPECT().Name().Return("Reverb").AnyTimes()

		format.EXPECT().Discover(path).Return(nil, nil).Times(2)

		gomock.InOrder(
			format.EXPECT().Instantiate(gomock.Any(), gomock.Any(), gomock.Any()).Return(instance, nil),
			format.EXPECT().Instantiate(gomock.Any(), gomock.Any(), gomock.Any()).Return(other, nil),
		)

		first, err := loader.LoadPlugin("Reverb")
		Expect(err).NotTo(HaveOccurred())

		second, err := loader.LoadPlugin("Reverb")
		Expect(err).NotTo(HaveOccurred())

		Expect(first).NotTo(BeIdenticalTo(second))
	})

	Describe("Inspect", func() {
		It("should list descriptors without instantiating", func() {
			path := makeBundle(dirs.app, "Reverb.component")
			descs := []api.Descriptor{
				{Name: "Reverb", FormatName: formatName},
				{Name: "Reverb Mono", FormatName: formatName},
			}

			format.EXPECT().Discover(path).Return(descs, nil)

			bundle, got, err := loader.Inspect("Reverb")

			Expect(err).NotTo(HaveOccurred())
			Expect(bundle.Path).To(Equal(path))
			Expect(got).To(Equal(descs))
		})
	})

	Describe("Close", func() {
		It("should close the format once", func() {
			format.EXPECT().Close().Return(nil).Times(1)

			Expect(loader.Close()).To(Succeed())
			Expect(loader.Close()).To(Succeed())
		})

		It("should refuse to load afterwards", func() {
			format.EXPECT().Close().Return(nil)
			Expect(loader.Close()).To(Succeed())

			_, err := loader.LoadPlugin("Reverb")

			Expect(errors.Is(err, plugin.ErrLoaderClosed)).To(BeTrue())
			Expect(loader.LastError()).To(Equal(plugin.ErrLoaderClosed.Error()))
		})

		It("should report a failing format close", func() {
			format.EXPECT().Close().Return(errors.New("busy"))

			err := loader.Close()

			Expect(err).To(MatchError(ContainSubstring("failed to close plugin format: busy")))
		})
	})
})
