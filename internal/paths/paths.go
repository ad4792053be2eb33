package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
)

// AppName is the directory name used under XDG base directories.
const AppName = "rulebridge"

// dialectDirs maps each dialect to the project-relative directory its
// files conventionally live in. Empty string means the project root.
var dialectDirs = map[canonical.Format]string{
	taxonomy.FormatCursor:    ".cursor/rules",
	taxonomy.FormatClaude:    ".claude",
	taxonomy.FormatCopilot:   ".github",
	taxonomy.FormatKiro:      ".kiro/steering",
	taxonomy.FormatWindsurf:  ".windsurf/rules",
	taxonomy.FormatTrae:      ".trae/rules",
	taxonomy.FormatDroid:     ".factory",
	taxonomy.FormatAider:     "",
	taxonomy.FormatAgentsMD:  "",
	taxonomy.FormatGemini:    ".gemini/commands",
	taxonomy.FormatCanonical: "",
}

// DefaultDirPerm is the permission for newly created output directories.
const DefaultDirPerm = 0o755

// EnsureDir creates the directory and any necessary parents.
// It is idempotent and returns nil if the directory already exists.
func EnsureDir(path string) error {
	return os.MkdirAll(path, DefaultDirPerm)
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the rulebridge configuration directory.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// CacheDir returns the rulebridge cache directory, used for batch job
// scratch output.
func CacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// DialectDir returns the project-relative directory where a dialect's
// files conventionally live, or "" for the project root (also returned
// for unknown dialects).
func DialectDir(format canonical.Format) string {
	return dialectDirs[format]
}
