package jailcfg

import (
	_ "embed"
	"fmt"
	"runtime/debug"
	"strings"
)

var (
	//go:embed VERSION
	version string

	rendered string
)

func init() {
	rendered = render()
}

// Version returns a version string for jailcfg, including the VCS revision
// the binary was built from when one is recorded.
func Version() string {
	return rendered
}

func render() string {
	v := strings.TrimSpace(version)
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return v
	}
	revision := ""
	modified := false
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			if setting.Value == "true" {
				modified = true
			}
		}
	}
	if revision == "" {
		return v
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	if modified {
		revision = revision + "*"
	}
	return fmt.Sprintf("%s (%s)", v, revision)
}
