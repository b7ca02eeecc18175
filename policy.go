// policy.go loads DeclarationPolicy from TOML configuration, so a caller
// can pin down the entering-king variant spec.md section 9 leaves open
// without recompiling.

package shogo

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// LoadDeclarationPolicy reads a DeclarationPolicy from the TOML file at
// path. Missing fields keep DefaultDeclarationPolicy's values.
func LoadDeclarationPolicy(path string) (DeclarationPolicy, error) {
	policy := DefaultDeclarationPolicy
	if _, err := toml.DecodeFile(path, &policy); err != nil {
		return DeclarationPolicy{}, fmt.Errorf("shogo: loading declaration policy from %q: %w", path, err)
	}
	return policy, nil
}
