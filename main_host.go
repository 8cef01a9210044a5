//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"disco/app"
	"disco/hal"
	"disco/internal/simconfig"
)

func main() {
	var (
		configPath string
		cfg        = simconfig.Default()
	)
	flag.StringVar(&configPath, "config", "", "HCL file with simulator settings; flags override it.")
	flag.Bool("headless", cfg.Headless, "Run without a window.")
	flag.Int("hz", cfg.Hz, "Step rate (window TPS or headless tick rate).")
	flag.Int("ticks", cfg.Ticks, "Stop after N steps in headless mode (0 = run forever).")
	flag.Int("scale", cfg.Scale, "Window scale factor.")
	flag.String("snapshot", cfg.Snapshot, "Write the last headless frame to this BMP file.")
	flag.Bool("audio", cfg.Audio.Enable, "Open the host sound output.")
	flag.Int("tone", cfg.Audio.ToneHz, "Test tone frequency in Hz.")
	flag.Int("sample-rate", cfg.Audio.SampleRate, "Audio output rate in Hz.")
	flag.Parse()

	if configPath != "" {
		var err error
		if cfg, err = simconfig.Load(configPath); err != nil {
			fatal(err)
		}
	}
	if err := applyFlags(&cfg); err != nil {
		fatal(err)
	}

	appCfg := app.Config{
		Tone:       cfg.Audio.Enable,
		ToneHz:     uint32(cfg.Audio.ToneHz),
		SampleRate: uint32(cfg.Audio.SampleRate),
		ScanBus:    true,
	}
	newApp := func(h hal.HAL) (hal.App, error) {
		s, err := app.NewWithConfig(h, appCfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	runCfg := hal.RunConfig{
		Hz:       cfg.Hz,
		Ticks:    uint64(cfg.Ticks),
		Scale:    cfg.Scale,
		Audio:    cfg.Audio.Enable,
		Snapshot: cfg.Snapshot,
	}

	if cfg.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, runCfg); err != nil {
			if err == context.Canceled {
				return
			}
			fatal(err)
		}
		return
	}

	if err := hal.RunWindow(newApp, runCfg); err != nil {
		fatal(err)
	}
}

// applyFlags copies the flags given on the command line over cfg.
func applyFlags(cfg *simconfig.Config) error {
	flag.Visit(func(f *flag.Flag) {
		g, ok := f.Value.(flag.Getter)
		if !ok {
			return
		}
		switch v := g.Get(); f.Name {
		case "headless":
			cfg.Headless = v.(bool)
		case "hz":
			cfg.Hz = v.(int)
		case "ticks":
			cfg.Ticks = v.(int)
		case "scale":
			cfg.Scale = v.(int)
		case "snapshot":
			cfg.Snapshot = v.(string)
		case "audio":
			cfg.Audio.Enable = v.(bool)
		case "tone":
			cfg.Audio.ToneHz = v.(int)
		case "sample-rate":
			cfg.Audio.SampleRate = v.(int)
		}
	})
	return cfg.Validate()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
