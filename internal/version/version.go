// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version reports the version of this module.
package version

import (
	"runtime/debug"
	"sync"
)

const modulePath = "go.astrophena.name/telegram"

var once = sync.OnceValue(load)

// Version returns the version of this module as recorded in the build
// information of the binary that embeds it, or "devel" if the version is
// unknown (for example, in tests or when built from a working copy).
func Version() string { return once() }

func load() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "devel"
	}
	if bi.Main.Path == modulePath && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	for _, dep := range bi.Deps {
		if dep.Path != modulePath {
			continue
		}
		if dep.Replace != nil || dep.Version == "" || dep.Version == "(devel)" {
			break
		}
		return dep.Version
	}
	return "devel"
}
