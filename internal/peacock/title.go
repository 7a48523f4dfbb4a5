package peacock

import (
	"os"
	"path/filepath"
	"strings"
)

// Title returns the pane label for dir (default: cwd).
// Inside a repository the label is "repo@branch:subdir" with the branch and
// subdir parts omitted when unavailable. Outside a repository it is the
// directory's basename with the home directory abbreviated to "~".
func (r *Resolver) Title(dir string) string {
	dir = orCwd(dir)

	root, ok := r.git.Toplevel(dir)
	if !ok {
		return plainTitle(dir)
	}

	name, subpath := r.git.WorktreeInfo(dir, root)
	title := name
	if branch, ok := r.git.Branch(dir); ok && branch != "" {
		title += "@" + branch
	}
	if subpath != "" {
		title += ":" + subpath
	}
	return title
}

// plainTitle labels a directory that is not inside a repository.
func plainTitle(dir string) string {
	normalized := NormalizePath(dir)
	if normalized == "~" {
		return "~"
	}
	if base := filepath.Base(normalized); base != "" && base != "." && base != string(filepath.Separator) {
		return base
	}
	return normalized
}

// NormalizePath abbreviates the user's home directory prefix to "~".
func NormalizePath(dir string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return dir
	}
	if dir == home {
		return "~"
	}
	if strings.HasPrefix(dir, home+string(filepath.Separator)) {
		return "~" + dir[len(home):]
	}
	return dir
}
