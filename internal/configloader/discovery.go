package configloader

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/samber/lo"
)

// appName names the configuration directories under /etc and XDG_CONFIG_HOME.
const appName = "gofill"

// ConfigPaths represents discovered configuration file paths.
type ConfigPaths struct {
	// System is the system-wide config path (e.g., /etc/gofill/config.yaml).
	System string

	// User is the user-level config path (e.g., ~/.config/gofill/config.yaml).
	User string

	// Project is the project-level config path (e.g., ./.gofill.yml).
	Project string

	// Explicit is a config path provided via --config flag.
	Explicit string
}

// projectConfigFiles are the config file names we search for, in order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigFiles = []string{
	".gofill.yml",
	".gofill.yaml",
	"gofill.yml",
	"gofill.yaml",
}

// vcsRootMarkers are directories that indicate a VCS root.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths looks up every configuration layer below the explicit
// --config file: /etc/gofill, $XDG_CONFIG_HOME/gofill, and the nearest
// project file above workDir. Layers that do not exist are left empty.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("discover config: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	return &ConfigPaths{
		System:  firstFile(systemConfigDir(), layerConfigFiles),
		User:    firstFile(userConfigDir(), layerConfigFiles),
		Project: project,
	}, nil
}

// layerConfigFiles are the names accepted inside the system and user
// configuration directories.
//
//nolint:gochecknoglobals // Read-only lookup table.
var layerConfigFiles = []string{"config.yaml", "config.yml"}

func systemConfigDir() string {
	if runtime.GOOS != "windows" {
		return filepath.Join("/etc", appName)
	}
	return filepath.Join(cmp.Or(os.Getenv("ProgramData"), `C:\ProgramData`), appName)
}

func userConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// firstFile returns the first of names that exists as a regular file in dir.
func firstFile(dir string, names []string) string {
	if dir == "" {
		return ""
	}
	path, _ := lo.Find(lo.Map(names, func(name string, _ int) string {
		return filepath.Join(dir, name)
	}), fileExists)
	return path
}

// FindProjectConfig returns the nearest project config file at or above
// startDir, or "" when there is none. The search ends at a VCS root or the
// home directory, whichever comes first.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	dir, err := filepath.Abs(cmp.Or(startDir, "."))
	if err != nil {
		return "", fmt.Errorf("resolve project directory: %w", err)
	}
	home, _ := os.UserHomeDir()

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("find project config: %w", err)
		}
		if path := firstFile(dir, projectConfigFiles); path != "" {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if isVCSRoot(dir) || dir == home || parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func isVCSRoot(dir string) bool {
	return lo.SomeBy(vcsRootMarkers, func(marker string) bool {
		info, err := os.Stat(filepath.Join(dir, marker))
		return err == nil && info.IsDir()
	})
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
