package main

import "os"
import "runtime/pprof"

import "github.com/magneticio/go-common/logging"

// startProfile collects a CPU profile into path until the returned function is called
func startProfile(path string) func() {
	f, err := os.Create(path)
	if err != nil {
		logging.Error("Cannot create profile: %v\n", err)
		return func() {}
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		logging.Error("Cannot start profile: %v\n", err)
		f.Close()
		return func() {}
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}
}
