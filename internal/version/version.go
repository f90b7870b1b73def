// Package version carries the release string printed by --version and
// embedded in reports. Overridden at link time with
// -ldflags "-X readsanalyzer/internal/version.Version=...".
package version

var Version = "0.3.0"
