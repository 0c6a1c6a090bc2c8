package util

// Overridden at build time via -ldflags "-X ...util.version=".
var version = "1.0.0"

// GetVersion returns the addon semantic version.
func GetVersion() string {
	return version
}
