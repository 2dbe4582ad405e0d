package util

import (
	"os"
	"path/filepath"
	"runtime"
)

// Build information. Populated at build time via -ldflags.
var (
	AppName    = "vibe"
	Version    = "1.0.0"
	CompileMod = "default"
	BuildTime  = ""
	GoVersion  = runtime.Version()
	GitBranch  = ""
	GitHash    = ""
)

var RootDir = func() string {
	ec, _ := os.Executable()
	return filepath.Dir(ec)
}
