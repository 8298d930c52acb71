package validators

import (
	"fmt"
	"regexp"
)

const maxProjectNameLength = 64

var projectNameRe = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidateProjectName checks that a project name is usable as a directory
// name, a package name, and a server identifier.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name is required")
	}
	if len(name) > maxProjectNameLength {
		return fmt.Errorf("project name must be at most %d characters", maxProjectNameLength)
	}
	if !projectNameRe.MatchString(name) {
		return fmt.Errorf("project name must start with a lowercase letter and contain only lowercase letters, digits, and hyphens")
	}
	if name[len(name)-1] == '-' {
		return fmt.Errorf("project name must not end with a hyphen")
	}
	return nil
}
