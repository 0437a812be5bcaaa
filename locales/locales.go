// Package locales bundles the UI translation resources served to the
// companion mobile client.
package locales

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed *.json
var files embed.FS

// Load returns the flat key→text translation map for a culture code.
// Returns an error for cultures that have no bundled resource file.
func Load(culture string) (map[string]string, error) {
	data, err := files.ReadFile(culture + ".json")
	if err != nil {
		return nil, fmt.Errorf("no translations for culture %q", culture)
	}

	translations := make(map[string]string)
	if err := json.Unmarshal(data, &translations); err != nil {
		return nil, fmt.Errorf("parse translations for culture %q: %w", culture, err)
	}

	return translations, nil
}
