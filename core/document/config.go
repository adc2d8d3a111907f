package document

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is the directory name used under every search root.
const AppName = "releng-sop"

// Config holds the document search settings.
type Config struct {
	// Roots is a path list (os.PathListSeparator separated) of search roots.
	// Empty means DefaultRoots.
	Roots string `mapstructure:"roots" default:""`
}

// SearchRoots returns the configured roots in priority order.
func (c Config) SearchRoots() []string {
	if c.Roots == "" {
		return DefaultRoots()
	}
	var roots []string
	for _, root := range filepath.SplitList(c.Roots) {
		if root != "" {
			roots = append(roots, root)
		}
	}
	return roots
}

// DefaultRoots returns the user config directory followed by the system one.
func DefaultRoots() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, AppName),
		filepath.Join("/etc", AppName),
	}
}
