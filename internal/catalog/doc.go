// Package catalog is the registry of packages the tool knows how to install
// or launch.
//
// A Registry is built once at startup from Descriptors and never changes
// afterwards, so it can be shared by the CLI, the terminal picker and the GUI
// worker without locking. Install and Launch check a package's capabilities
// before dispatching to its routine; a rejected call has no side effects.
package catalog
