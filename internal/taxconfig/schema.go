package taxconfig

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// SchemaVersion is the table document format this build understands.
// Table files declare schema_version to indicate compatibility.
const SchemaVersion = "1.1.0"

// IsCompatible reports whether a table document's schema_version can be read.
// Documents from 1.0.0 through SchemaVersion are accepted.
func IsCompatible(docVersion string) (bool, error) {
	constraint, err := semver.NewConstraint(">= 1.0.0, <= " + SchemaVersion)
	if err != nil {
		return false, fmt.Errorf("invalid schema version: %w", err)
	}

	v, err := semver.NewVersion(docVersion)
	if err != nil {
		return false, fmt.Errorf("invalid table schema version %q: %w", docVersion, err)
	}

	return constraint.Check(v), nil
}
