// Package serial opens NMEA receiver serial ports in raw mode.
package serial

import (
	"fmt"
	"os"
)

// AutoDetect returns the first device present among the paths a USB or
// HAT GPS receiver typically appears as, or "" when none is found.
func AutoDetect() string {
	candidates := make([]string, 0, 22)
	for i := 0; i < 10; i++ {
		candidates = append(candidates, fmt.Sprintf("/dev/ttyACM%d", i))
	}
	for i := 0; i < 10; i++ {
		candidates = append(candidates, fmt.Sprintf("/dev/ttyUSB%d", i))
	}
	// UART GPS hats on a Pi.
	candidates = append(candidates, "/dev/serial0", "/dev/ttyAMA0")

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
