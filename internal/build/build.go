// Package build provides variables that are set at build-time
// with the -X ldflag, e.g.
//
//	go build -ldflags "-X github.com/lone-faerie/pressure/internal/build.version=v1.0.0"
//
// If the values are not given at build-time, they will be determined
// from [debug.BuildInfo].
package build

import (
	"regexp"
	"runtime/debug"
	"sync"
)

var (
	pkg       string
	version   string
	buildTime string
)

var once sync.Once

var semverRegexp = regexp.MustCompile(`v?\d+(\.\d+){0,2}`)

func semver(v string) string {
	loc := semverRegexp.FindStringIndex(v)
	if loc == nil {
		return v
	}
	return v[loc[0]:loc[1]]
}

func vcsTime(info *debug.BuildInfo) string {
	for _, s := range info.Settings {
		if s.Key != "vcs.time" || s.Value == "" {
			continue
		}
		if t := s.Value; t[len(t)-1] == 'Z' {
			return t[:len(t)-1] + "+00:00"
		}
		return s.Value
	}
	return ""
}

func load() {
	if pkg != "" && version != "" && buildTime != "" {
		version = semver(version) + devSuffix
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		fillFrom(info)
	}
}

// fillFrom sets the values not given at build-time from info.
func fillFrom(info *debug.BuildInfo) {
	if pkg == "" {
		pkg = info.Main.Path
	}
	if version == "" {
		version = info.Main.Version + devSuffix
	}
	if buildTime == "" {
		buildTime = vcsTime(info)
	}
}

// Package returns the main package path.
func Package() string {
	once.Do(load)
	return pkg
}

// Version returns the version of the binary.
func Version() string {
	once.Do(load)
	return version
}

// BuildTime returns the time of the last commit the binary was built from.
func BuildTime() string {
	once.Do(load)
	return buildTime
}
