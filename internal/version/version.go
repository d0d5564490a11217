package version

import (
	"runtime"
	"time"
)

// Set at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = time.Now().Format(time.RFC3339)
	GoVersion = runtime.Version()
)
