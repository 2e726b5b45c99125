package version

import "runtime/debug"

// Current is the qstr version. Release builds set it with
// -ldflags "-X github.com/DrSkyle/qstr/pkg/version.Current=v1.2.3".
var Current = "dev"

const AppName = "qstr"

// String returns Current, or the module version when built with go install.
func String() string {
	if Current != "dev" {
		return Current
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Current
}
