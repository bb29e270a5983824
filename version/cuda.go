//go:build cuda

package version

import "fmt"

import "gorgonia.org/cu"

func cudaVersion() string {
	var v = cu.Version()
	n, err := cu.NumDevices()
	if err != nil {
		return fmt.Sprintf("%d.%d (no devices: %v)", v/1000, (v%1000)/10, err)
	}
	return fmt.Sprintf("%d.%d (%d devices)", v/1000, (v%1000)/10, n)
}
