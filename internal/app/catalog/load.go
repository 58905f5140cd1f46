package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"guildhall/internal/domain/progression"
)

// catalogFile is the YAML shape of a gate catalogue file:
//
//	gates:
//	  - id: ui-bestiary
//	    type: ui-panel
//	    name: Bestiary
//	    conditions:
//	      - kind: fame-milestone
//	        params: {minFame: 75}
//	    alternatives:
//	      - - kind: resource
//	          params: {resourceType: gold, minAmount: 1000}
type catalogFile struct {
	Gates []progression.GateDefinition `yaml:"gates"`
}

// Load parses a YAML catalogue file. A malformed file or an empty gate list
// is an error; catalogue problems are fatal at startup, never degraded.
func Load(path string) ([]progression.GateDefinition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalogue: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalogue %s: %w", path, err)
	}
	if len(file.Gates) == 0 {
		return nil, fmt.Errorf("catalogue %s declares no gates", path)
	}

	for i, gate := range file.Gates {
		if gate.ID == "" {
			return nil, fmt.Errorf("catalogue %s: gate %d has no id", path, i)
		}
		if gate.Name == "" {
			return nil, fmt.Errorf("catalogue %s: gate %s has no name", path, gate.ID)
		}
	}
	return file.Gates, nil
}
