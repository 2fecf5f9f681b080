// Package validation provides input validation for mapping aliases.
package validation

import (
	"fmt"
	"regexp"
)

// Alias validation:
// - One or more lowercase ASCII letters (a-z)
// - No digits, hyphens, uppercase or punctuation
// Aliases double as hostnames and as prefixes of generated router,
// service and middleware names.
var aliasRegex = regexp.MustCompile(`^[a-z]+$`)

// ValidateAlias validates a single mapping alias.
func ValidateAlias(alias string) error {
	if alias == "" {
		return fmt.Errorf("alias cannot be empty")
	}

	if !aliasRegex.MatchString(alias) {
		return fmt.Errorf("invalid alias format: only lowercase letters (a-z) are allowed")
	}

	return nil
}

// FirstInvalidAlias checks aliases in order and returns the first one that
// fails ValidateAlias together with its error. The error is nil when every
// alias is valid.
func FirstInvalidAlias(aliases []string) (string, error) {
	for _, alias := range aliases {
		if err := ValidateAlias(alias); err != nil {
			return alias, err
		}
	}
	return "", nil
}
