// Package ui is the desktop window started by `worbots-setup app`.
//
// Everything that touches widgets runs on the fyne goroutine. Install and
// launch actions run on a worker.Pool; their progress and results are
// marshalled back with fyne.Do.
package ui
