// Package version reports build metadata for placelog binaries.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the release version, set via ldflags.
	Version string
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string
)

// Info is the build metadata of the running binary.
type Info struct {
	Version   string `json:"version"`
	Revision  string `json:"revision"`
	BuildDate string `json:"buildDate,omitempty"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Get returns the build metadata of the running binary. The version falls
// back to the main module version recorded by the Go toolchain, then to
// "devel".
func Get() Info {
	info := Info{
		Version:   Version,
		Revision:  "unknown",
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := debug.ReadBuildInfo()
	if ok {
		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}

		info.Revision = revision(bi.Settings)
	}

	if info.Version == "" {
		info.Version = "devel"
	}

	return info
}

// String formats i as a single line.
func (i Info) String() string {
	s := fmt.Sprintf("placelog %s (%s, %s, %s)", i.Version, i.Revision, i.GoVersion, i.Platform)
	if i.BuildDate != "" {
		s += " built " + i.BuildDate
	}

	return s
}

func revision(settings []debug.BuildSetting) string {
	rev := "unknown"
	modified := false

	for _, v := range settings {
		switch v.Key {
		case "vcs.revision":
			rev = v.Value
		case "vcs.modified":
			if v.Value == "true" {
				modified = true
			}
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
