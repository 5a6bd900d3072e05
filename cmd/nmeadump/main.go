package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/tristanseifert/libnmea/internal/config"
	"github.com/tristanseifert/libnmea/internal/pps"
	"github.com/tristanseifert/libnmea/internal/serial"
	"github.com/tristanseifert/libnmea/internal/udp"
	"github.com/tristanseifert/libnmea/scan"
)

func main() {
	var (
		configPath string
		devicePath string
		filePath   string
		jsonOut    bool
	)
	flag.StringVar(&configPath, "config", "", "Path to YAML or TOML config")
	flag.StringVar(&devicePath, "device", "", "Serial device to read (overrides config)")
	flag.StringVar(&filePath, "file", "", "Read sentences from a file instead of a device")
	flag.BoolVar(&jsonOut, "json", false, "Emit one JSON object per sentence")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			log.Fatalf("config load failed: %v", err)
		}
	}
	if devicePath != "" {
		cfg.Input.Source = "serial"
		cfg.Input.Device = devicePath
	}
	if filePath != "" {
		cfg.Input.Source = "file"
		cfg.Input.Path = filePath
	}
	if jsonOut {
		cfg.Output.Format = "json"
	}

	input, name, err := openInput(cfg.Input)
	if err != nil {
		log.Fatalf("input open failed: %v", err)
	}
	defer input.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var cast *udp.Broadcaster
	if cfg.UDP.Enable {
		cast, err = udp.NewBroadcaster(cfg.UDP.Dest)
		if err != nil {
			log.Fatalf("udp broadcaster init failed: %v", err)
		}
		defer cast.Close()
		log.Printf("udp rebroadcast dest=%s", cfg.UDP.Dest)
	}

	var pulses *pps.Watcher
	if cfg.PPS.Enable {
		pulses, err = pps.Open(cfg.PPS.Chip, cfg.PPS.Line)
		if err != nil {
			// Timing is an extra; the dump is still useful without it.
			log.Printf("pps unavailable: %v", err)
			pulses = nil
		} else {
			defer pulses.Close()
			chip := cfg.PPS.Chip
			if chip == "" {
				chip = "auto"
			}
			log.Printf("pps enabled chip=%s line=%d", chip, cfg.PPS.Line)
		}
	}

	log.Printf("nmeadump starting input=%s format=%s", name, cfg.Output.Format)

	// A signal closes the input so a blocking serial read cannot outlive
	// the context.
	go func() {
		<-ctx.Done()
		_ = input.Close()
	}()

	rep := newReporter(os.Stdout, cfg.Output, pulses)
	sc := scan.NewScanner(input)
	if policy, ok := scan.PolicyByName(cfg.Input.Checksum); ok {
		sc.SetChecksumPolicy(policy)
	}
	for sc.Scan() {
		sentence := sc.Sentence()
		if cast != nil {
			if err := cast.Send(scan.Line(sentence)); err != nil && ctx.Err() == nil {
				log.Printf("udp send failed: %v", err)
			}
		}
		rep.observe(sentence)
	}
	if err := sc.Err(); err != nil && ctx.Err() == nil {
		log.Printf("read stopped: %v", err)
	}

	rep.logSummary(sc.Drops())
	log.Printf("nmeadump stopping")
}

func openInput(in config.InputConfig) (io.ReadCloser, string, error) {
	switch in.Source {
	case "file":
		f, err := os.Open(in.Path)
		if err != nil {
			return nil, "", err
		}
		return f, in.Path, nil
	case "stdin":
		return os.Stdin, "stdin", nil
	default: // serial
		device := in.Device
		if device == "" {
			device = serial.AutoDetect()
			if device == "" {
				return nil, "", fmt.Errorf("no serial device found, set input.device")
			}
		}
		f, err := serial.Open(device, in.Baud)
		if err != nil {
			return nil, "", err
		}
		return f, fmt.Sprintf("%s@%d", device, in.Baud), nil
	}
}
