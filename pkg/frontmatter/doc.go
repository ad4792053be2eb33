// Package frontmatter provides generic parsing and formatting of YAML
// frontmatter in markdown documents.
//
// Frontmatter is delimited by lines containing only "---" at the start and
// end of the block. The content between delimiters is parsed as YAML.
//
// # Basic Usage
//
//	type KiroMatter struct {
//		Inclusion        string `yaml:"inclusion"`
//		FileMatchPattern string `yaml:"fileMatchPattern"`
//	}
//
//	var matter KiroMatter
//	body, err := frontmatter.Parse(doc, &matter)
//
// [Parse] treats frontmatter as optional and returns the full content as
// body when none is present. [MustParse] fails with [ErrMissingFrontmatter]
// instead, for dialects that mandate a frontmatter block. [ParseMap]
// returns every key as a string, preserving fields the caller has no schema
// for; importers use it to capture dialect side-channel data.
//
// Both Unix (LF) and Windows (CRLF) line endings are handled.
package frontmatter
