package importer

import "strings"

// maxInferredTags caps best-effort tag inference.
const maxInferredTags = 5

// techKeywords is the fixed vocabulary of technology names recognized by
// InferTags. Order decides which tags win when a document mentions more
// than maxInferredTags of them.
var techKeywords = []string{
	"typescript", "javascript", "python", "golang", "rust", "java", "ruby",
	"react", "vue", "angular", "svelte", "nextjs", "node",
	"django", "rails", "spring", "laravel",
	"kubernetes", "docker", "terraform", "ansible",
	"postgres", "mysql", "sqlite", "mongodb", "redis",
	"graphql", "grpc",
	"aws", "gcp", "azure",
	"tailwind", "css", "html",
	"git", "testing",
}

// InferTags scans content for known technology keywords and returns at
// most five matches in vocabulary order. Results are a best-effort tagging
// aid, never authoritative: explicit source tags always win.
func InferTags(content string) []string {
	lower := strings.ToLower(content)
	var tags []string
	for _, kw := range techKeywords {
		if strings.Contains(lower, kw) {
			tags = append(tags, kw)
			if len(tags) == maxInferredTags {
				break
			}
		}
	}
	return tags
}
