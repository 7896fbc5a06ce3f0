//go:build !debug

package build

const devSuffix = ""
