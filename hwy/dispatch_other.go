//go:build !amd64 && !arm64

package hwy

func init() {
	// Non-amd64/arm64 architectures use the scalar width.
	setScalarMode()
}
