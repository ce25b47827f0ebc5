package names

import (
	"fmt"
	"regexp"
)

const MaxMetadataKeyLength = 128

// Metadata keys become fields of siteMetadata, so they must be valid
// selection names in a metadata query.
var metadataKeyPattern = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

func ValidateMetadataKey(key string) error {
	if key == "" {
		return fmt.Errorf("metadata key is required")
	}
	if len(key) > MaxMetadataKeyLength {
		return fmt.Errorf("metadata key must be at most %d characters", MaxMetadataKeyLength)
	}
	if !metadataKeyPattern.MatchString(key) {
		return fmt.Errorf("metadata key %q must match %q", key, metadataKeyPattern.String())
	}
	return nil
}
