// Package build reports what binary is running: module version, VCS
// revision and toolchain.
package build

import (
	"encoding/json"
	"log/slog"
	"runtime/debug"
	"sync"
)

// InfoJSON may be set at link time with -ldflags "-X" to a JSON encoded
// Info. When empty, Current falls back to the information the Go toolchain
// embeds in the binary.
var InfoJSON string //nolint:gochecknoglobals

// DevelVersion is reported when no version information is available.
const DevelVersion = "(devel)"

type Info struct {
	Version      string            `json:"version"`
	GitCommit    string            `json:"git_commit"` //nolint:tagliatelle
	GitDate      string            `json:"git_date"`   //nolint:tagliatelle
	Modified     bool              `json:"modified"`
	GoVersion    string            `json:"go_version"` //nolint:tagliatelle
	Dependencies map[string]string `json:"dependencies"`
}

// Parse decodes a JSON encoded Info. It reports false for empty input and
// logs and reports false for malformed input.
func Parse(js string) (*Info, bool) {
	if len(js) == 0 || js == "{}" {
		return nil, false
	}

	var info Info

	if err := json.Unmarshal([]byte(js), &info); err != nil {
		slog.Warn("Failed to parse build info from JSON",
			"data", js,
			"error", err)

		return nil, false
	}

	return &info, true
}

// FromBuildInfo converts the toolchain's embedded build information.
func FromBuildInfo(bi *debug.BuildInfo) *Info {
	info := &Info{
		Version:      bi.Main.Version,
		GoVersion:    bi.GoVersion,
		Dependencies: make(map[string]string, len(bi.Deps)),
	}

	for _, dep := range bi.Deps {
		info.Dependencies[dep.Path] = dep.Version
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.GitCommit = s.Value
		case "vcs.time":
			info.GitDate = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}

	return info
}

// Current returns the build information of the running binary.
var Current = sync.OnceValue(func() *Info { //nolint:gochecknoglobals
	if info, ok := Parse(InfoJSON); ok {
		return info
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		return FromBuildInfo(bi)
	}

	return &Info{Version: DevelVersion}
})

// String is a one line description such as "v1.2.0 (abc1234)".
func (i *Info) String() string {
	v := i.Version
	if v == "" {
		v = DevelVersion
	}

	if len(i.GitCommit) >= 7 { //nolint:mnd
		v += " (" + i.GitCommit[:7]
		if i.Modified {
			v += ", modified"
		}

		v += ")"
	}

	return v
}
