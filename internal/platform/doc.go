// Package platform wraps the operating system collaborators of package
// actions: spawning installers and programs (optionally elevated), opening
// URLs, and the per-user directories Windows programs install into.
//
// Everything here is a thin shell around os/exec and environment lookups so
// install routines can be exercised against a fake Runner in tests.
package platform
