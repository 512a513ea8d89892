//go:build windows

package platform

import "golang.org/x/sys/windows"

// IsElevated reports whether the current process token has administrator rights.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
