// Package simconfig reads the host simulator settings from an HCL file.
//
//	headless = true
//	hz       = 60
//	ticks    = 600
//	scale    = 2
//	snapshot = "frame.bmp"
//
//	audio {
//	  enable      = true
//	  sample_rate = 16000
//	  tone_hz     = 440
//	}
package simconfig

import (
	"os"

	"github.com/hashicorp/hcl"
	"github.com/juju/errors"
)

const (
	DefaultHz         = 60
	DefaultScale      = 2
	DefaultSampleRate = 16000
	DefaultToneHz     = 440
)

type Config struct {
	Headless bool   `hcl:"headless"`
	Hz       int    `hcl:"hz"`
	Ticks    int    `hcl:"ticks"`
	Scale    int    `hcl:"scale"`
	Snapshot string `hcl:"snapshot"`

	Audio struct {
		Enable     bool `hcl:"enable"`
		SampleRate int  `hcl:"sample_rate"`
		ToneHz     int  `hcl:"tone_hz"`
	} `hcl:"audio"`
}

func Default() Config {
	var c Config
	c.Hz = DefaultHz
	c.Scale = DefaultScale
	c.Audio.SampleRate = DefaultSampleRate
	c.Audio.ToneHz = DefaultToneHz
	return c
}

// Parse overlays the settings in b on the defaults.
func Parse(b []byte) (Config, error) {
	c := Default()
	if err := hcl.Unmarshal(b, &c); err != nil {
		return Config{}, errors.Annotatef(err, "config unmarshal content='%s'", string(b))
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.NotFoundf("config path=%s", path)
		}
		return Config{}, errors.Annotatef(err, "config path=%s", path)
	}
	c, err := Parse(b)
	return c, errors.Annotatef(err, "config path=%s", path)
}

func (c Config) Validate() error {
	switch {
	case c.Hz <= 0:
		return errors.NotValidf("hz=%d", c.Hz)
	case c.Ticks < 0:
		return errors.NotValidf("ticks=%d", c.Ticks)
	case c.Scale <= 0:
		return errors.NotValidf("scale=%d", c.Scale)
	case c.Audio.SampleRate <= 0 || c.Audio.SampleRate > 192000:
		return errors.NotValidf("audio sample_rate=%d", c.Audio.SampleRate)
	case c.Audio.ToneHz < 0 || c.Audio.ToneHz*2 > c.Audio.SampleRate:
		return errors.NotValidf("audio tone_hz=%d", c.Audio.ToneHz)
	}
	return nil
}
