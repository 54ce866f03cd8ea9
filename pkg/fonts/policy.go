package fonts

import "github.com/user/designlibre/pkg/ports"

// DirErrorPolicy is applied to every font directory that cannot be read.
// It has no way to fail the scan: enumeration always continues with the
// remaining directories.
type DirErrorPolicy func(dir string, err error)

// SkipSilently omits unreadable directories without a trace.
func SkipSilently(string, error) {}

// SkipWithWarning omits unreadable directories and logs each one.
func SkipWithWarning(logger ports.Logger) DirErrorPolicy {
	return func(dir string, err error) {
		logger.Warn("Skipping font directory %s: %v", dir, err)
	}
}
