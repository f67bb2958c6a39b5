package audio_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/towelWet/TowelHost/internal/audio"
)

var _ = Describe("NullDevice", func() {
	var (
		ctrl   *gomock.Controller
		device *audio.NullDevice
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		device = audio.NewNullDevice(48000, 64)
	})

	AfterEach(func() {
		Expect(device.Close()).To(Succeed())
		ctrl.Finish()
	})

	It("should report nothing until opened", func() {
		_, ok := device.Current()
		Expect(ok).To(BeFalse())

		Expect(device.Open(0, 2)).To(Succeed())

		cfg, ok := device.Current()
		Expect(ok).To(BeTrue())
		Expect(cfg).To(Equal(audio.Config{SampleRate: 48000, BlockSize: 64, ActiveInputs: 0, ActiveOutputs: 2}))
		Expect(cfg.BlockDuration()).To(BeNumerically("~", 1333*time.Microsecond, time.Microsecond))
	})

	It("should refuse to register while closed", func() {
		cb := audio.NewMockCallback(ctrl)

		Expect(device.Register(cb)).To(MatchError(audio.ErrDeviceNotOpen))
	})

	It("should reject invalid settings", func() {
		Expect(audio.NewNullDevice(0, 64).Open(2, 2)).To(MatchError(ContainSubstring("invalid device settings")))
	})

	It("should drive a callback between start and stop", func() {
		Expect(device.Open(2, 2)).To(Succeed())

		cb := audio.NewMockCallback(ctrl)
		started := cb.EXPECT().AboutToStart(audio.Config{SampleRate: 48000, BlockSize: 64, ActiveInputs: 2, ActiveOutputs: 2})
		cb.EXPECT().Process(gomock.Len(2), gomock.Len(2), 64).MinTimes(1).After(started)
		cb.EXPECT().Stopped().Times(1)

		Expect(device.Register(cb)).To(Succeed())
		Eventually(device.Blocks).Should(BeNumerically(">=", 1))

		device.Unregister(cb)
		blocks := device.Blocks()

		Consistently(device.Blocks, 20*time.Millisecond).Should(Equal(blocks))
	})

	It("should ignore unknown callbacks", func() {
		Expect(device.Open(2, 2)).To(Succeed())

		Expect(func() { device.Unregister(audio.NewMockCallback(ctrl)) }).NotTo(Panic())
	})

	It("should run a bridge end to end", func() {
		bridge := audio.NewBridge(device)
		proc := audio.NewMockProcessor(ctrl)

		proc.EXPECT().Configure(2, 2, 48000.0, 64).Return(nil).MinTimes(1)
		proc.EXPECT().Prepare(48000.0, 64).MinTimes(1)
		proc.EXPECT().ProcessBlock(gomock.Any(), gomock.Any()).MinTimes(1)
		proc.EXPECT().Release().Times(1)

		Expect(bridge.Initialize()).To(Succeed())
		bridge.SetProcessor(proc)
		Expect(bridge.Start()).To(Succeed())

		Eventually(device.Blocks).Should(BeNumerically(">=", 2))

		bridge.Stop()
		Expect(bridge.State()).To(Equal(audio.StateStopped))

		bridge.SetProcessor(nil)
		Expect(bridge.Close()).To(Succeed())
	})
})
