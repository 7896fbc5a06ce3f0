//go:build debug

package build

// devSuffix marks the version of binaries built with the debug tag.
const devSuffix = " (dev)"
