// Package buildinfo carries the version stamped in with
// -ldflags "-X disco/internal/buildinfo.Version=...".
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the version, or the commit for untagged builds.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Line is the boot banner suffix: version, commit and build date.
func Line() string {
	s := Short()
	if Commit != "" && Commit != "unknown" && Commit != s {
		s += " " + Commit
	}
	if Date != "" && Date != "unknown" {
		s += " " + Date
	}
	return s
}
