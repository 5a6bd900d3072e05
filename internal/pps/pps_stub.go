//go:build !linux

package pps

import "fmt"

// Open is only implemented for the Linux GPIO character device.
func Open(chipPath string, offset int) (*Watcher, error) {
	return nil, fmt.Errorf("pps: gpio events unsupported on this platform")
}
