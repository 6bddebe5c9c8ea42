// ABOUTME: Version and product identification
// ABOUTME: Reported by the version command and in log output
package version

// Version is overridden at build time with -ldflags "-X .../internal/version.Version=..."
var Version = "0.1.0"

const (
	// Product is the user-facing program name
	Product = "soundbites"

	// Manufacturer identifies the maintainer
	Manufacturer = "harperreed"
)

// String returns "soundbites 0.1.0"
func String() string {
	return Product + " " + Version
}
