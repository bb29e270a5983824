//go:build !cuda

package version

// build with -tags cuda to query the driver
func cudaVersion() string {
	return "unavailable"
}
