package orchestrator

import (
	"fmt"
	"strings"
)

// validateStages rejects duplicate stage names and names that collide with
// the reserved usage-map keys "synth" and "quality_refine", resolving the
// two open questions about silent overwrite in favor of early rejection.
func validateStages(stages []StageSpec) error {
	seen := make(map[string]bool, len(stages))
	for _, s := range stages {
		name := strings.TrimSpace(s.Name)
		if name == reservedSynthKey || name == reservedRefineKey {
			return fmt.Errorf("%w: %q", ErrReservedStageName, name)
		}
		if seen[name] {
			return fmt.Errorf("%w: %q", ErrDuplicateStageName, name)
		}
		seen[name] = true
	}
	return nil
}
