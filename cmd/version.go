// Package cmd holds build identification injected at link time, e.g.
//
//	go build -ldflags "-X github.com/rulebridge/rulebridge/cmd.Version=v0.1.0"
package cmd

var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)
