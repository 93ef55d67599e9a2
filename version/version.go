package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// FromBuildInfo describes the running binary: the module version when it was installed with `go install`,
// otherwise the VCS revision it was built from.
func FromBuildInfo() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unavailable"
	}

	return describe(info)
}

func describe(info *debug.BuildInfo) string {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return fmt.Sprintf("%s %s", info.Main.Path, v)
	}

	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}

	revision := settings["vcs.revision"]
	if revision == "" {
		return "unavailable"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "built from %s revision %s", settings["vcs"], revision)

	if ts := settings["vcs.time"]; ts != "" {
		fmt.Fprintf(&b, " at %s", ts)
	}

	if settings["vcs.modified"] == "true" {
		b.WriteString(" with local modifications")
	}

	return b.String()
}
