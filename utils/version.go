package utils

import (
	"fmt"
	"runtime"
)

// These are set at build time using -ldflags.
var (
	VersionMajor = "0"
	VersionMinor = "1"
	VersionPatch = "0"
	Branch       = "main"
	Commit       = "dev"
	BuildDate    = "unknown"
)

// GetVersion constructs the version information for the service.
func GetVersion() Version {
	commitShort := Commit
	if len(Commit) > 7 {
		commitShort = Commit[:7]
	}

	obj := VersionObject{
		Major:     VersionMajor,
		Minor:     VersionMinor,
		Patch:     VersionPatch,
		Branch:    Branch,
		Commit:    commitShort,
		BuildDate: BuildDate,
		Arch:      fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	tag := fmt.Sprintf("%s.%s.%s", obj.Major, obj.Minor, obj.Patch)
	str := fmt.Sprintf("%s-%s+%s.%s.%s", tag, obj.Branch, obj.Commit, obj.BuildDate, obj.Arch)

	return Version{Tag: tag, Str: str, Obj: obj}
}
