package app

import (
	"fmt"
	"time"

	"disco/audio"
	"disco/audio/wm8994"
	"disco/hal"
	"disco/internal/buildinfo"
	"disco/lcd"

	"github.com/juju/errors"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	DefaultSampleRate = 16000
	DefaultToneHz     = 440

	// framesPerHalf is 16 ms of audio at the default rate.
	framesPerHalf = 256
	toneAmplitude = 6000
)

type Config struct {
	// Tone plays a sine on the codec stream when the board has one.
	Tone       bool
	ToneHz     uint32
	SampleRate uint32
	// ScanBus logs every address answering on the control bus.
	ScanBus bool
}

func (c *Config) normalize() {
	if c.SampleRate == 0 {
		c.SampleRate = DefaultSampleRate
	}
	if c.ToneHz == 0 {
		c.ToneHz = DefaultToneHz
	}
}

// System is the running demo: one pacman frame per Step.
type System struct {
	log       hal.Logger
	lcdEnable hal.Pin
	backlight hal.Pin
	panel     lcd.Lcd
	pac       *pacman
	out       *audio.Out
	dead      bool
	closed    bool
}

// New brings the board up with default config.
func New(h hal.HAL) (*System, error) {
	return NewWithConfig(h, Config{})
}

// Run brings the board up and animates forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, Config{})
}

func RunWithConfig(h hal.HAL, cfg Config) {
	s, err := NewWithConfig(h, cfg)
	if err != nil {
		h.Logger().WriteLineString("disco: " + err.Error())
		select {}
	}
	for {
		if err := s.Step(); err != nil {
			h.Logger().WriteLineString("disco: " + err.Error())
			if cerr := s.Close(); cerr != nil {
				h.Logger().WriteLineString("disco: " + cerr.Error())
			}
			select {}
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func NewWithConfig(h hal.HAL, cfg Config) (*System, error) {
	cfg.normalize()
	log := h.Logger()
	log.WriteLineString("disco " + buildinfo.Line())

	s := &System{
		log:       log,
		lcdEnable: h.LCDEnable(),
		backlight: h.Backlight(),
	}
	s.lcdEnable.High()
	s.backlight.High()

	panel := lcd.NewRK043FN48H(h.LTDC(), h.DMA2D())
	panel.Clear(lcd.White)
	c := panel.Config()
	log.WriteLineString(fmt.Sprintf("lcd: %dx%d @%dHz pixclk=%d", c.ActiveWidth, c.ActiveHeight, c.FrameRate, c.PixelClockHz()))

	drawCaption(panel)
	s.panel = panel
	s.pac = newPacman(panel.BoundingBox())

	if bus := h.ControlBus(); bus != nil {
		if cfg.ScanBus {
			for _, addr := range hal.ScanControlBus(bus, hal.ControlBusFirstAddr, hal.ControlBusLastAddr) {
				log.WriteLineString(fmt.Sprintf("i2c: device at 0x%02x", addr))
			}
		}
		probeCodec(log, wm8994.New(bus, wm8994.Config{Address: wm8994.Address}))
	}

	if cfg.Tone {
		out, err := startTone(h.Audio(), cfg)
		if err != nil {
			return nil, err
		}
		if out == nil {
			log.WriteLineString("audio: no output")
		} else {
			log.WriteLineString(fmt.Sprintf("audio: tone %d Hz @%d Hz", cfg.ToneHz, cfg.SampleRate))
		}
		s.out = out
	}
	return s, nil
}

// Step draws one animation frame. A panic while drawing is shown on the
// panel once; later steps do nothing.
func (s *System) Step() error {
	if s.dead || s.closed {
		return nil
	}
	defer func() {
		if v := recover(); v != nil {
			s.dead = true
			showPanic(s.log, s.panel, v)
		}
	}()
	s.pac.draw(s.panel)
	s.pac.advance()
	return nil
}

// Close stops the audio output and switches the panel off. It is safe to
// call more than once.
func (s *System) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	var err error
	if s.out != nil {
		err = s.out.Stop()
		s.log.WriteLineString("audio: stopped")
	}
	if s.backlight != nil {
		s.backlight.Low()
	}
	if s.lcdEnable != nil {
		s.lcdEnable.Low()
	}
	return err
}

func drawCaption(panel *lcd.RK043FN48H) {
	d := lcd.NewDisplayer(panel)
	font := &proggy.TinySZ8pt7b
	black := lcd.Black.RGBA8()
	tinyfont.WriteLine(d, font, 4, 14, "STM32F746G", black)
	tinyfont.WriteLine(d, font, 4, 28, "RK043FN48H", black)
	tinyfont.WriteLine(d, font, 4, 42, buildinfo.Short(), black)
}

func probeCodec(log hal.Logger, codec *wm8994.Device) {
	ok, err := codec.Probe()
	switch {
	case err != nil:
		log.WriteLineString("codec: " + err.Error())
	case ok:
		log.WriteLineString(fmt.Sprintf("codec: detected DAC with id 0x%04x", wm8994.FamilyID))
	default:
		log.WriteLineString("codec: no WM8994 answered")
	}
}

func startTone(out hal.AudioOut, cfg Config) (*audio.Out, error) {
	if out == nil {
		return nil, nil
	}
	stream, err := out.Stream(cfg.SampleRate)
	if err != nil {
		return nil, errors.Annotate(err, "audio")
	}
	o, err := audio.NewOut(stream, framesPerHalf, audio.NewTone(cfg.SampleRate, cfg.ToneHz, toneAmplitude))
	if err != nil {
		return nil, err
	}
	if err := o.Start(); err != nil {
		return nil, err
	}
	return o, nil
}
