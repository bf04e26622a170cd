// Package configpaths locates mirror configuration files.
package configpaths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

// EnvConfig names the environment variable that points at a config file.
const EnvConfig = "MIRROR_CONFIG"

// DefaultConfigDir returns the platform-specific configuration directory for mirror.
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("AppData"); appdata != "" {
			return filepath.Join(appdata, "mirror"), nil
		}
		return "", errors.New("AppData not set")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "mirror"), nil
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".config", "mirror"), nil
		}
		return "", errors.New("HOME not set")
	}
}

// DefaultNamedConfigPath returns the default config file path for the given
// format and base name, e.g. "arity" or "gen-table".
func DefaultNamedConfigPath(baseName, format string) (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, baseName+"."+Ext(format)), nil
}

// Ext maps a config format name to its file extension.
func Ext(format string) string {
	switch format {
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return "json"
	}
}

// EnsureDir ensures the directory for a given file path exists.
func EnsureDir(filePath string) error {
	return os.MkdirAll(filepath.Dir(filePath), 0o755)
}

// ModuleRoot walks up from dir to the nearest directory holding a go.mod.
// ok is false when none is found.
func ModuleRoot(dir string) (root string, ok bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		if fi, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil && !fi.IsDir() {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Candidates holds config file candidates grouped by the loader that reads them.
type Candidates struct {
	JSON []string
	YAML []string
	TOML []string
}

func (c *Candidates) add(dir, base string) {
	c.JSON = append(c.JSON, filepath.Join(dir, base+".json"))
	c.YAML = append(c.YAML, filepath.Join(dir, base+".yaml"), filepath.Join(dir, base+".yml"))
	c.TOML = append(c.TOML, filepath.Join(dir, base+".toml"))
}

func (c *Candidates) addFile(p string) {
	switch filepath.Ext(p) {
	case ".yaml", ".yml":
		c.YAML = append(c.YAML, p)
	case ".toml":
		c.TOML = append(c.TOML, p)
	default:
		c.JSON = append(c.JSON, p)
	}
}

// ConfigCandidatePaths builds candidate paths for config files per format, in
// decreasing priority: userPath, $MIRROR_CONFIG, the working directory, the
// enclosing module root, the user config dir and /etc/mirror.
func ConfigCandidatePaths(userPath string) Candidates {
	var c Candidates

	if userPath != "" {
		c.addFile(userPath)
	}
	if env := os.Getenv(EnvConfig); env != "" {
		c.addFile(env)
	}

	wd, _ := os.Getwd()
	c.add(wd, ".mirror")
	c.add(wd, "mirror")

	if root, ok := ModuleRoot(wd); ok && root != wd {
		c.add(root, ".mirror")
	}

	if dir, err := DefaultConfigDir(); err == nil {
		c.add(dir, "config")
	}

	if runtime.GOOS != "windows" {
		c.add("/etc/mirror", "config")
	}

	return c
}
