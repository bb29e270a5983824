// Package version reports the versions of the software loading the datasets: this module,
// its dependencies, the Go runtime and the hardware it can use.
package version

import "fmt"
import "path"
import "regexp"
import "runtime"
import "runtime/debug"
import "strings"

import "github.com/klauspost/cpuid/v2"

// Module is reported when the binary carries no build information
const Module = "github.com/neurlang/fashionmnist"

type Dependency struct {
	Path    string
	Version string
}

// Name is the last element of the module path without a major version suffix
func (d Dependency) Name() string {
	var p = d.Path
	if base := path.Base(p); majorSuffix.MatchString(base) {
		p = path.Dir(p)
	}
	return path.Base(p)
}

var majorSuffix = regexp.MustCompile(`^v[0-9]+$`)

type Report struct {
	Module  string
	Version string
	Go      string
	OS      string
	Arch    string
	Deps    []Dependency

	CPU    string
	Cores  int
	AVX512 bool
	CUDA   string
}

// Collect gathers the report from the build information and the running machine
func Collect() (r Report) {
	r.Module = Module
	r.Version = "(devel)"
	r.Go = runtime.Version()
	r.OS = runtime.GOOS
	r.Arch = runtime.GOARCH
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Path != "" {
			r.Module = info.Main.Path
		}
		if info.Main.Version != "" {
			r.Version = info.Main.Version
		}
		for _, dep := range info.Deps {
			if dep.Replace != nil {
				dep = dep.Replace
			}
			r.Deps = append(r.Deps, Dependency{dep.Path, dep.Version})
		}
	}
	r.CPU = strings.TrimSpace(cpuid.CPU.BrandName)
	r.Cores = cpuid.CPU.LogicalCores
	r.AVX512 = cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512DQ)
	r.CUDA = cudaVersion()
	return
}

// Dependency returns the version of the dependency with the given module path
func (r Report) Dependency(modulePath string) (string, bool) {
	for _, d := range r.Deps {
		if d.Path == modulePath {
			return d.Version, true
		}
	}
	return "", false
}

// Lines renders the report as "<name> version: <version>" lines followed by the hardware
func (r Report) Lines() (lines []string) {
	lines = append(lines,
		fmt.Sprintf("%s version: %s", Dependency{Path: r.Module}.Name(), r.Version),
		fmt.Sprintf("go version: %s %s/%s", r.Go, r.OS, r.Arch),
	)
	for _, d := range r.Deps {
		lines = append(lines, fmt.Sprintf("%s version: %s", d.Name(), d.Version))
	}
	var cpu = r.CPU
	if cpu == "" {
		cpu = "unknown"
	}
	if r.AVX512 {
		cpu += ", avx512"
	}
	lines = append(lines,
		fmt.Sprintf("cpu: %s (%d threads)", cpu, r.Cores),
		fmt.Sprintf("cuda version: %s", r.CUDA),
	)
	return
}

func (r Report) String() string {
	return strings.Join(r.Lines(), "\n")
}
