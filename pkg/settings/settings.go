// Package settings provides build metadata, per-run configuration, and
// context helpers shared by the rosterview CLI and UI packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "rosterview"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds the configuration for a single execution: logging level,
// display options and the sort order applied to sections.
type Run struct {
	MinLogLevel int8
	RosterPath  string
	NoColor     bool
	Interactive bool
	SortOrder   string // "name" or "activity"
}

// NewRunParams returns Run defaults for a CLI invocation.
func NewRunParams() *Run {
	return &Run{
		MinLogLevel: 0,
		SortOrder:   "name",
	}
}
