package resolver

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidResourceURI marks a resource URI that does not match the
// expected pattern.
var ErrInvalidResourceURI = errors.New("invalid resource URI")

// resourceURIPattern matches the fixed resource URI shape, e.g.
// "jira://issue/fields".
var resourceURIPattern = regexp.MustCompile(`^jira://([a-z]+)/fields$`)

// parseResourceURI extracts the entity type from a resource URI.
func parseResourceURI(uri string) (string, error) {
	m := resourceURIPattern.FindStringSubmatch(uri)
	if m == nil {
		return "", fmt.Errorf("%w: %q (expected jira://<entityType>/fields)", ErrInvalidResourceURI, uri)
	}
	return m[1], nil
}
