//go:build linux

package pps

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/warthog618/go-gpiocdev"
)

// Open requests rising-edge events for the given line offset. An empty
// chipPath scans the character devices present, which covers Pi kernel
// variants that move header GPIOs between chips.
func Open(chipPath string, offset int) (*Watcher, error) {
	candidates := []string{chipPath}
	if chipPath == "" {
		candidates = []string{"/dev/gpiochip0", "/dev/gpiochip4"}
		entries, _ := os.ReadDir("/dev")
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), "gpiochip") {
				candidates = append(candidates, filepath.Join("/dev", e.Name()))
			}
		}
	}

	w := &Watcher{}
	handler := func(evt gpiocdev.LineEvent) {
		if evt.Type == gpiocdev.LineEventRisingEdge {
			w.record(evt.Timestamp)
		}
	}

	// On Pi, header pins carry names like "GPIO18"; prefer the name so the
	// BCM number works no matter which chip the kernel put it on.
	lineName := fmt.Sprintf("GPIO%d", offset)

	for _, path := range candidates {
		chip, err := gpiocdev.NewChip(path)
		if err != nil {
			continue
		}
		off := offset
		if named, err := chip.FindLine(lineName); err == nil {
			off = named
		}
		line, err := chip.RequestLine(off,
			gpiocdev.AsInput,
			gpiocdev.WithRisingEdge,
			gpiocdev.WithEventHandler(handler),
			gpiocdev.WithConsumer("nmeadump-pps"))
		if err != nil {
			_ = chip.Close()
			continue
		}
		w.closeFn = func() error {
			err := line.Close()
			_ = chip.Close()
			return err
		}
		return w, nil
	}

	return nil, fmt.Errorf("pps: gpio line %d not found (or busy)", offset)
}
