package peacock

import (
	"encoding/json"
	"path/filepath"

	"github.com/Iron-Ham/tmux-peacock/internal/cache"
	"github.com/Iron-Ham/tmux-peacock/internal/color"
)

// settingsColorField is the per-project color declared by the VSCode
// Peacock extension. It takes precedence over every other color source.
const settingsColorField = "peacock.color"

// settingsRelPath locates the editor settings file under a project root.
var settingsRelPath = filepath.Join(".vscode", "settings.json")

// settingsColor reads the declared Peacock color for the project at dir.
// An absent file, invalid JSON, missing field, or malformed color all
// yield ok=false; the settings file is untrusted input and goes through
// the same guarded read as the cache.
func settingsColor(dir string) (string, bool) {
	raw, ok := cache.ReadFileGuarded(filepath.Join(dir, settingsRelPath), cache.DefaultMaxSize)
	if !ok {
		return "", false
	}

	var settings map[string]any
	if err := json.Unmarshal(raw, &settings); err != nil {
		return "", false
	}

	declared, ok := settings[settingsColorField].(string)
	if !ok {
		return "", false
	}
	return color.ValidateHex(declared)
}
