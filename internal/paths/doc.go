// Package paths resolves filesystem locations for the rulebridge CLI:
// the XDG-compliant application config and cache directories, and the
// project-relative directories where each dialect's files conventionally
// live.
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base
// Directory Specification compliance. On Linux, config lives under
// ~/.config/rulebridge and cache under ~/.cache/rulebridge.
//
// Dialect directories are project-relative:
//
//	| Dialect  | Directory         |
//	|----------|-------------------|
//	| cursor   | .cursor/rules/    |
//	| claude   | .claude/          |
//	| copilot  | .github/          |
//	| kiro     | .kiro/steering/   |
//	| windsurf | .windsurf/rules/  |
//	| trae     | .trae/rules/      |
//	| droid    | .factory/         |
//	| gemini   | .gemini/commands/ |
//	| aider    | (project root)    |
//	| agentsmd | (project root)    |
//
// Note these are directories only; the authoritative per-package file
// path comes from each exporter's Filename method.
package paths
