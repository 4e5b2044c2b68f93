// Package version holds als's build-time version metadata, adapted from
// the teacher's internal/version package.
package version

import "github.com/fatih/color"

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the server's semantic version. spec.md §6 fixes
	// serverInfo.version at "1.0.0"; this is the same value, just colorized
	// for terminal display. It is built from function calls, so -ldflags -X
	// cannot override it.
	Version = versionMajorColor.Sprint("1") + "." + versionMinorColor.Sprint("0") + "." + versionPatchColor.Sprint("0")

	// ServerInfoVersion is the plain, uncolorized string sent in the LSP
	// initialize response's serverInfo.version field.
	ServerInfoVersion = "1.0.0"

	// GitCommit is an optional git commit hash, set via -ldflags.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601, set via -ldflags.
	BuildDate = ""
)

// Name is the server's display name, matching spec.md §6's
// serverInfo.name exactly.
const Name = "Alif Language Server"
