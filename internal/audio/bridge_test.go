package audio_test

import (
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/towelWet/TowelHost/internal/audio"
	"github.com/towelWet/TowelHost/pkg/plugin"
)

var _ = Describe("Bridge", func() {
	var (
		ctrl   *gomock.Controller
		device *audio.MockDevice
		proc   *audio.MockProcessor
		bridge *audio.Bridge
		cfg    audio.Config
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		device = audio.NewMockDevice(ctrl)
		proc = audio.NewMockProcessor(ctrl)
		bridge = audio.NewBridge(device)
		cfg = audio.Config{SampleRate: 48000, BlockSize: 256, ActiveInputs: 2, ActiveOutputs: 2}
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	initialize := func() {
		device.EXPECT().Open(2, 2).Return(nil)
		device.EXPECT().Current().Return(cfg, true).AnyTimes()
		Expect(bridge.Initialize()).To(Succeed())
	}

	Describe("Initialize", func() {
		It("should open a stereo device once", func() {
			initialize()

			Expect(bridge.Initialize()).To(Succeed())
			Expect(bridge.State()).To(Equal(audio.StateInitialized))
		})

		It("should honor requested channel counts", func() {
			bridge = audio.NewBridge(device, audio.WithChannels(1, 4))
			device.EXPECT().Open(1, 4).Return(nil)
			device.EXPECT().Current().Return(cfg, true).AnyTimes()

			Expect(bridge.Initialize()).To(Succeed())
		})

		It("should report an open failure once and stay initialized", func() {
			device.EXPECT().Open(2, 2).Return(errors.New("no such device"))

			err := bridge.Initialize()

			Expect(errors.Is(err, audio.ErrDeviceUnavailable)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("no such device"))
			Expect(bridge.State()).To(Equal(audio.StateInitialized))
			Expect(bridge.Initialize()).To(Succeed())
		})
	})

	Describe("Start and Stop", func() {
		It("should do nothing before Initialize", func() {
			Expect(bridge.Start()).To(Succeed())
			Expect(bridge.State()).To(Equal(audio.StateUninitialized))
		})

		It("should register once and run", func() {
			initialize()
			device.EXPECT().Register(bridge).Return(nil).Times(1)

			Expect(bridge.Start()).To(Succeed())
			Expect(bridge.Start()).To(Succeed())
			Expect(bridge.State()).To(Equal(audio.StateRunning))
		})

		It("should keep the state when registration fails", func() {
			initialize()
			device.EXPECT().Register(bridge).Return(errors.New("device busy"))

			err := bridge.Start()

			Expect(errors.Is(err, audio.ErrDeviceUnavailable)).To(BeTrue())
			Expect(bridge.State()).To(Equal(audio.StateInitialized))
		})

		It("should be safe to stop before Initialize", func() {
			device.EXPECT().Unregister(bridge)

			Expect(bridge.Stop).NotTo(Panic())
			Expect(bridge.State()).To(Equal(audio.StateUninitialized))
		})

		It("should move from running to stopped and restart", func() {
			initialize()
			device.EXPECT().Register(bridge).Return(nil).Times(2)
			device.EXPECT().Unregister(bridge)

			Expect(bridge.Start()).To(Succeed())
			bridge.Stop()
			Expect(bridge.State()).To(Equal(audio.StateStopped))

			Expect(bridge.Start()).To(Succeed())
			Expect(bridge.State()).To(Equal(audio.StateRunning))
		})

		It("should close the device once", func() {
			initialize()
			device.EXPECT().Unregister(bridge).Times(2)
			device.EXPECT().Close().Return(nil).Times(1)

			Expect(bridge.Close()).To(Succeed())
			Expect(bridge.Close()).To(Succeed())
		})
	})

	Describe("SetProcessor", func() {
		It("should configure and prepare before publishing", func() {
			initialize()

			gomock.InOrder(
				proc.EXPECT().Configure(2, 2, 48000.0, 256).Return(nil),
				proc.EXPECT().Prepare(48000.0, 256),
			)

			bridge.SetProcessor(proc)

			Expect(bridge.Processor()).To(BeIdenticalTo(proc))
		})

		It("should ignore the same processor", func() {
			initialize()
			proc.EXPECT().Configure(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
			proc.EXPECT().Prepare(gomock.Any(), gomock.Any()).Times(1)

			bridge.SetProcessor(proc)
			bridge.SetProcessor(proc)
		})

		It("should defer preparation until the device starts", func() {
			bridge.SetProcessor(proc)

			gomock.InOrder(
				proc.EXPECT().Configure(2, 2, 48000.0, 256).Return(nil),
				proc.EXPECT().Prepare(48000.0, 256),
			)

			bridge.AboutToStart(cfg)
		})

		It("should defer preparation when the device reports nothing", func() {
			device.EXPECT().Open(2, 2).Return(errors.New("gone"))
			device.EXPECT().Current().Return(audio.Config{}, false)
			_ = bridge.Initialize()

			bridge.SetProcessor(proc)
		})

		DescribeTable("channel reconciliation",
			func(inputs, outputs, wantIn, wantOut int) {
				cfg.ActiveInputs, cfg.ActiveOutputs = inputs, outputs
				initialize()

				proc.EXPECT().Configure(wantIn, wantOut, 48000.0, 256).Return(nil)
				proc.EXPECT().Prepare(48000.0, 256)

				bridge.SetProcessor(proc)
			},
			Entry("stereo", 2, 2, 2, 2),
			Entry("no channels at all", 0, 0, 2, 2),
			Entry("output only", 0, 2, 2, 2),
			Entry("wide output without inputs", 0, 6, 2, 2),
			Entry("input only", 1, 0, 2, 2),
			Entry("asymmetric", 2, 3, 2, 3),
		)

		It("should still prepare when the layout is rejected", func() {
			initialize()
			proc.EXPECT().Configure(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(errors.New("layout not supported"))
			proc.EXPECT().Prepare(48000.0, 256)

			bridge.SetProcessor(proc)
		})

		It("should release exactly once when cleared", func() {
			initialize()
			proc.EXPECT().Configure(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			proc.EXPECT().Prepare(gomock.Any(), gomock.Any())
			proc.EXPECT().Release().Times(1)

			bridge.SetProcessor(proc)
			bridge.SetProcessor(nil)
			bridge.SetProcessor(nil)

			Expect(bridge.Processor()).To(BeNil())
		})

		It("should release the old processor before preparing the new one", func() {
			initialize()
			next := audio.NewMockProcessor(ctrl)

			proc.EXPECT().Configure(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			proc.EXPECT().Prepare(gomock.Any(), gomock.Any())
			bridge.SetProcessor(proc)

			gomock.InOrder(
				proc.EXPECT().Release(),
				next.EXPECT().Configure(2, 2, 48000.0, 256).Return(nil),
				next.EXPECT().Prepare(48000.0, 256),
			)

			bridge.SetProcessor(next)
		})

		It("should not release twice after the device stopped", func() {
			initialize()
			proc.EXPECT().Configure(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			proc.EXPECT().Prepare(gomock.Any(), gomock.Any())
			proc.EXPECT().Release().Times(1)

			bridge.SetProcessor(proc)
			bridge.Stopped()
			bridge.SetProcessor(nil)
		})

		It("should release a processor that was never prepared", func() {
			proc.EXPECT().Release().Times(1)

			bridge.SetProcessor(proc)
			bridge.SetProcessor(nil)
			bridge.SetProcessor(nil)
		})

		It("should release an unprepared processor on stop only once", func() {
			proc.EXPECT().Release().Times(1)

			bridge.SetProcessor(proc)
			bridge.Stopped()
			bridge.Stopped()
			bridge.SetProcessor(nil)
		})

		It("should release again after a restart prepared it", func() {
			initialize()
			proc.EXPECT().Configure(2, 2, 48000.0, 256).Return(nil).Times(2)
			proc.EXPECT().Prepare(48000.0, 256).Times(2)
			proc.EXPECT().Release().Times(2)

			bridge.SetProcessor(proc)
			bridge.Stopped()
			bridge.AboutToStart(cfg)
			bridge.SetProcessor(nil)
		})
	})

	Describe("Process", func() {
		It("should output silence without a processor", func() {
			inputs := channels(2, 64, 0.5)
			outputs := channels(2, 64, 0.9)

			bridge.Process(inputs, outputs, 64)

			for _, out := range outputs {
				Expect(out).To(HaveEach(float32(0)))
			}

			for _, in := range inputs {
				Expect(in).To(HaveEach(float32(0.5)))
			}
		})

		It("should tolerate a negative block length", func() {
			outputs := channels(2, 8, 0.9)

			Expect(func() { bridge.Process(nil, outputs, -1) }).NotTo(Panic())
			Expect(outputs[0]).To(HaveEach(float32(0.9)))
		})

		It("should only clear the active frames", func() {
			outputs := channels(1, 64, 0.9)

			bridge.Process(nil, outputs, 32)

			Expect(outputs[0][:32]).To(HaveEach(float32(0)))
			Expect(outputs[0][32:]).To(HaveEach(float32(0.9)))
		})

		When("a processor is set", func() {
			BeforeEach(func() {
				initialize()
				proc.EXPECT().Configure(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				proc.EXPECT().Prepare(gomock.Any(), gomock.Any())
				bridge.AboutToStart(cfg)
				bridge.SetProcessor(proc)
			})

			It("should reconcile two inputs with three outputs", func() {
				inputs := [][]float32{
					{1, 1, 1, 1},
					{2, 2, 2, 2},
				}
				outputs := channels(3, 4, 9)

				proc.EXPECT().ProcessBlock(gomock.Any(), gomock.Any()).
					Do(func(buf *plugin.AudioBuffer, events *plugin.EventBuffer) {
						Expect(buf.NumChannels()).To(Equal(3))
						Expect(buf.NumSamples()).To(Equal(4))
						Expect(buf.Channel(0)).To(HaveEach(float32(1)))
						Expect(buf.Channel(1)).To(HaveEach(float32(2)))
						Expect(buf.Channel(2)).To(HaveEach(float32(0)))
						Expect(events.Len()).To(BeZero())

						for ch := range buf.NumChannels() {
							for i, v := range buf.Channel(ch) {
								buf.Channel(ch)[i] = v*10 + float32(ch)
							}
						}
					})

				bridge.Process(inputs, outputs, 4)

				Expect(outputs[0]).To(HaveEach(float32(10)))
				Expect(outputs[1]).To(HaveEach(float32(21)))
				Expect(outputs[2]).To(HaveEach(float32(2)))
			})

			It("should skip inactive channels", func() {
				inputs := [][]float32{nil, {3, 3}}
				outputs := [][]float32{nil, make([]float32, 2)}

				proc.EXPECT().ProcessBlock(gomock.Any(), gomock.Any()).
					Do(func(buf *plugin.AudioBuffer, _ *plugin.EventBuffer) {
						Expect(buf.Channel(0)).To(HaveEach(float32(0)))
						Expect(buf.Channel(1)).To(HaveEach(float32(3)))
					})

				bridge.Process(inputs, outputs, 2)

				Expect(outputs[0]).To(BeNil())
				Expect(outputs[1]).To(HaveEach(float32(3)))
			})

			It("should grow the buffer for a larger block", func() {
				inputs := channels(2, 1024, 1)
				outputs := channels(2, 1024, 0)

				proc.EXPECT().ProcessBlock(gomock.Any(), gomock.Any()).
					Do(func(buf *plugin.AudioBuffer, _ *plugin.EventBuffer) {
						Expect(buf.NumSamples()).To(Equal(1024))
					})

				bridge.Process(inputs, outputs, 1024)

				Expect(outputs[1]).To(HaveEach(float32(1)))
			})

			It("should hand the processor an empty block for a negative length", func() {
				proc.EXPECT().ProcessBlock(gomock.Any(), gomock.Any()).Do(
					func(buf *plugin.AudioBuffer, _ *plugin.EventBuffer) {
						Expect(buf.NumSamples()).To(BeZero())
					})

				outputs := channels(2, 8, 0.9)

				Expect(func() { bridge.Process(channels(2, 8, 1), outputs, -5) }).NotTo(Panic())
				Expect(outputs[1]).To(HaveEach(float32(0.9)))
			})

			It("should stop calling the processor once cleared", func() {
				proc.EXPECT().Release()
				bridge.SetProcessor(nil)

				outputs := channels(2, 8, 1)
				bridge.Process(channels(2, 8, 1), outputs, 8)

				Expect(outputs[0]).To(HaveEach(float32(0)))
			})
		})
	})
})
