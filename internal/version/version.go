// Package version carries the build metadata stamped into nsc binaries.
// Release builds override every variable via -ldflags; a plain `go build`
// yields the -dev fingerprint below.
package version

import "github.com/fatih/color"

var (
	versionColor = color.New(color.FgMagenta, color.Bold)

	// Version is the semantic version of the nsc toolchain.
	Version = versionColor.Sprint("0.2.0") + "-dev"

	// GitCommit is the commit hash the binary was built from.
	GitCommit = ""

	// GitMessage is the subject line of that commit.
	GitMessage = ""

	// BuildDate is the build timestamp in ISO-8601.
	BuildDate = ""
)
