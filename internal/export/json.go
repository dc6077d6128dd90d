package export

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
)

// WriteJSON writes any bid artifact as indented JSON. The serialized form
// contains only primitive and semantic types, making it the stable
// interchange boundary for downstream tooling.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return eris.Wrap(err, "export: marshal json")
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return eris.Wrapf(err, "export: write %s", path)
	}
	return nil
}
