// Package peacock resolves a directory to its project color and pane label.
//
// Colors are assigned per repository, not per subdirectory: a directory is
// first resolved to its git root when one exists. The color itself comes
// from the highest-precedence available source: an explicitly declared
// Peacock color in the project's editor settings, then the persisted cache,
// then deterministic derivation from the project name. Resolution is total;
// the worst case is a freshly derived color that could not be persisted.
package peacock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Iron-Ham/tmux-peacock/internal/cache"
	"github.com/Iron-Ham/tmux-peacock/internal/color"
	"github.com/Iron-Ham/tmux-peacock/internal/git"
	"github.com/Iron-Ham/tmux-peacock/internal/logging"
)

// Resolver derives display labels and colors for directories.
type Resolver struct {
	git   *git.Client
	cache *cache.Store
	log   *logging.Logger
}

// NewResolver creates a Resolver over the given collaborators.
func NewResolver(gitClient *git.Client, store *cache.Store, log *logging.Logger) *Resolver {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Resolver{git: gitClient, cache: store, log: log}
}

// ResolveColor returns the project color for dir (default: cwd).
// Precedence: declared Peacock color in the project settings, cached
// assignment, freshly derived color. It never fails; cache persistence is
// best-effort.
func (r *Resolver) ResolveColor(dir string) string {
	dir = orCwd(dir)

	target := dir
	if root, ok := r.git.Toplevel(dir); ok {
		target = root
	}

	if declared, ok := settingsColor(target); ok {
		r.log.Debug("using declared peacock color", "dir", target, "color", declared)
		return declared
	}

	key := colorKey(target)

	entries := r.cache.Load()
	if cached, ok := entries[key]; ok {
		if validated, ok := color.ValidateHex(cached); ok {
			r.log.Debug("cache hit", "key", key, "color", validated)
			return validated
		}
		// Invalid cached value: fall through and overwrite it.
		r.log.Warn("discarding invalid cached color", "key", key, "value", cached)
	}

	generated := color.Generate(key)
	entries[key] = generated
	if err := r.cache.Save(entries); err != nil {
		// Not persisting is fine; the same key derives the same color next time.
		r.log.Warn("cache save failed", "key", key, "error", err)
	}
	r.log.Debug("generated color", "key", key, "color", generated)
	return generated
}

// ColoredTitle returns the pane label wrapped in tmux foreground markers.
func (r *Resolver) ColoredTitle(dir string) string {
	dir = orCwd(dir)
	return fmt.Sprintf("#[fg=%s]%s#[default]", r.ResolveColor(dir), r.Title(dir))
}

// colorKey reduces a target directory to its stable cache key.
func colorKey(target string) string {
	base := filepath.Base(target)
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "root"
	}
	return base
}

// orCwd substitutes the current working directory for an empty dir.
func orCwd(dir string) string {
	if dir != "" {
		return dir
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}
