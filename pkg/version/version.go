// Package version exposes the build identity of the coverpoint binary.
// The variables are overridden at link time:
//
//	go build -ldflags "-X github.com/coverpoint/coverpoint/pkg/version.Version=v1.2.3"
package version

var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the VCS revision the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
