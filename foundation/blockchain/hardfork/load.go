package hardfork

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load opens and consumes a file of custom hardfork definitions keyed by
// name. The definitions are checked when they are handed to NewCatalog.
func Load(path string) (map[string]Definition, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var defs map[string]Definition
	if err := json.Unmarshal(content, &defs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	for name, def := range defs {
		if def.Name == "" {
			def.Name = name
			defs[name] = def
		}
	}

	return defs, nil
}
