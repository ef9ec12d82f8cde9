//go:build tinygo

package app

func captureStack() []byte {
	return nil
}
