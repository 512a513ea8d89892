package catalog

import (
	"fmt"
	"strings"
)

// UnknownPackageError is returned for an id that is not in the registry.
// The message lists every valid id; the catalog is small enough to print.
type UnknownPackageError struct {
	ID    string
	Valid []string
}

func (e *UnknownPackageError) Error() string {
	return fmt.Sprintf("unknown package %q, must be one of: %s", e.ID, strings.Join(e.Valid, ", "))
}

// NotInstallableError is returned when installing a package that cannot be
// installed directly. Parent names the package that installs it, if any.
type NotInstallableError struct {
	ID     string
	Parent string
}

func (e *NotInstallableError) Error() string {
	if e.Parent != "" {
		return fmt.Sprintf("package %s cannot be installed directly as it is part of the package %s", e.ID, e.Parent)
	}
	return fmt.Sprintf("package %s cannot be installed as it is not an installable program", e.ID)
}

// NotLaunchableError is returned when launching a package that is not a program.
type NotLaunchableError struct {
	ID string
}

func (e *NotLaunchableError) Error() string {
	return fmt.Sprintf("package %s cannot be launched as it is not a specific program", e.ID)
}
