// Package ved edits ruby-annotated text: "|body(reading)" markup shown as
// formatted ruby, horizontally or in vertical columns.
package ved

import (
	_ "embed"
	"fmt"
	"regexp"
	"runtime/debug"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version is the release version without the leading "v".
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string
	GoVersion string
	Revision  string
	Modified  bool
}

// ReadBuildInfo combines the embedded version with the toolchain and VCS
// stamps recorded by the Go linker, when present.
func ReadBuildInfo() BuildInfo {
	info := BuildInfo{Version: Version()}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String renders e.g. "ved v0.1.0 (go1.24.1, rev 1a2b3c4+dirty)".
func (b BuildInfo) String() string {
	var extra []string
	if b.GoVersion != "" {
		extra = append(extra, b.GoVersion)
	}
	if b.Revision != "" {
		rev := b.Revision
		if len(rev) > 7 {
			rev = rev[:7]
		}
		if b.Modified {
			rev += "+dirty"
		}
		extra = append(extra, "rev "+rev)
	}
	s := fmt.Sprintf("ved v%s", b.Version)
	if len(extra) > 0 {
		s += " (" + strings.Join(extra, ", ") + ")"
	}
	return s
}
