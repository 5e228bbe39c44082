// Package version reports build information for the httpkit binary.
//
// Values are set at compile time and fall back to the VCS stamp embedded by
// the Go toolchain:
//
//	go build -ldflags "-X github.com/kbukum/httpkit/version.Version=1.0.0"
package version
