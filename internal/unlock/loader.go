package unlock

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/runfall/CheatKeeper_Go/internal/validation"
)

// CatalogFile is the on-disk catalog document.
type CatalogFile struct {
	Abilities []Spec `json:"abilities"`
}

// LoadSpec reads an authored catalog from a JSON file, validating it
// against the catalog schema before decoding. The returned specs still go
// through full semantic validation (dependencies, cycles) in NewCatalog.
func LoadSpec(path, schemaPath string, sv validation.SchemaValidator) ([]Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	if err := sv.ValidateBytes(data, schemaPath); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	var file CatalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if len(file.Abilities) == 0 {
		return nil, fmt.Errorf("no abilities defined in %s", path)
	}

	return file.Abilities, nil
}
