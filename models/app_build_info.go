package models

import "fmt"

// notAvailable stands in for build fields the linker did not stamp.
const notAvailable = "N/A"

// AppBuildInfo is the version, date and commit stamped into the server binary
// with -ldflags. Empty fields read as "N/A".
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

func (a AppBuildInfo) BuildVersion() string { return orNotAvailable(a.buildVersion) }
func (a AppBuildInfo) BuildDate() string    { return orNotAvailable(a.buildDate) }
func (a AppBuildInfo) BuildCommit() string  { return orNotAvailable(a.buildCommit) }

// Stamped reports whether a version was set at link time. A stamped version
// takes precedence over App.Version from the configuration.
func (a AppBuildInfo) Stamped() bool {
	return a.buildVersion != ""
}

func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", a.BuildVersion(), a.BuildCommit(), a.BuildDate())
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
