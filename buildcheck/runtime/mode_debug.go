//go:build debug

package runtime

// debugBuild reports whether the binary was compiled with the debug tag.
const debugBuild = true
