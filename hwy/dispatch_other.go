//go:build !amd64 && !arm64

package hwy

func init() {
	// wasm, riscv64 and the rest have no detection yet; lane groups are
	// still correct there, only reported as scalar.
	setScalarMode()
}
