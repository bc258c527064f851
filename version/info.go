// Package version describes the build of the benchmark tooling, for reports that outlive the run.
package version

import (
	"fmt"
	"runtime"
)

type Version struct {
	Major, Minor, Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%v.%v.%v", v.Major, v.Minor, v.Patch)
}

// Current is the version of this module.
var Current = Version{Major: 0, Minor: 1, Patch: 0}

// Info identifies the tool and the environment a report was produced in.
type Info struct {
	Name      string
	Version   Version
	GoVersion string
	OS        string
	Arch      string
	NumCPU    int
}

// NewInfo returns the info of the running binary.
func NewInfo(name string) Info {
	return Info{
		Name:      name,
		Version:   Current,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

func (i Info) String() string {
	return fmt.Sprintf("%v %v (%v %v/%v, %v CPUs)", i.Name, i.Version, i.GoVersion, i.OS, i.Arch, i.NumCPU)
}
