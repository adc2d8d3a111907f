package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-ini/ini"
	"github.com/spf13/viper"
)

// Kind is a family of documents stored in its own sub-directory.
type Kind string

const (
	KindEnvironment Kind = "environments"
	KindRelease     Kind = "releases"
	KindPulp        Kind = "pulp"
)

func (k Kind) filename(name string) string {
	if k == KindPulp {
		return name + ".conf"
	}
	return name + ".json"
}

func (k Kind) singular() string {
	switch k {
	case KindEnvironment:
		return "environment"
	case KindRelease:
		return "release"
	default:
		return string(k)
	}
}

// Loader resolves documents by name over an ordered list of search roots.
type Loader struct {
	roots []string
}

// NewLoader creates a loader searching roots in order; the first match wins.
func NewLoader(roots []string) *Loader {
	return &Loader{roots: roots}
}

// Dirs returns the directories searched for documents of the given kind.
func (l *Loader) Dirs(kind Kind) []string {
	dirs := make([]string, 0, len(l.roots))
	for _, root := range l.roots {
		dirs = append(dirs, filepath.Join(root, string(kind)))
	}
	return dirs
}

// Locate returns the resolved path of the named document.
func (l *Loader) Locate(kind Kind, name string) (string, error) {
	dirs := l.Dirs(kind)
	for _, dir := range dirs {
		candidate := filepath.Join(dir, kind.filename(name))
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		// default.json is commonly a symlink to the real environment
		resolved, err := filepath.EvalSymlinks(candidate)
		if err != nil {
			return "", &ConfigError{Kind: kind, Name: name, Path: candidate, Err: err}
		}
		return resolved, nil
	}
	return "", &ConfigError{Kind: kind, Name: name, Searched: dirs, Err: ErrNotFound}
}

// read locates and parses a JSON document.
func (l *Loader) read(kind Kind, name string) (*viper.Viper, string, error) {
	path, err := l.Locate(kind, name)
	if err != nil {
		return nil, "", err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, path, &ConfigError{Kind: kind, Name: name, Path: path, Err: err}
	}
	return v, path, nil
}

// readINI locates and parses an INI document such as a pulp-admin config.
func (l *Loader) readINI(kind Kind, name string) (*ini.File, string, error) {
	path, err := l.Locate(kind, name)
	if err != nil {
		return nil, "", err
	}

	f, err := ini.Load(path)
	if err != nil {
		return nil, path, &ConfigError{Kind: kind, Name: name, Path: path, Err: err}
	}
	return f, path, nil
}

// requireKeys returns a ConfigError naming the first absent key.
func requireKeys(v *viper.Viper, kind Kind, name, path string, keys ...string) error {
	for _, key := range keys {
		if v.GetString(key) == "" {
			return &ConfigError{
				Kind: kind,
				Name: name,
				Path: path,
				Err:  fmt.Errorf("%w: %s", ErrMissingKey, key),
			}
		}
	}
	return nil
}

// IsNotFound reports whether err is a ConfigError for a missing document.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
