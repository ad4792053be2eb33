package frontmatter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for frontmatter parsing.
var (
	// ErrMissingFrontmatter is returned by MustParse when the document does
	// not open with a frontmatter block.
	ErrMissingFrontmatter = errors.New("missing frontmatter")

	// ErrUnclosedFrontmatter is returned when the opening delimiter has no
	// matching closing delimiter.
	ErrUnclosedFrontmatter = errors.New("missing closing frontmatter delimiter")
)

// Split separates a document into its raw frontmatter block and body.
// found is false when the document does not open with a "---" line; in that
// case body is the full input. An opening delimiter without a closing one
// is an error: silently treating the rest of the file as frontmatter would
// swallow the whole body.
func Split(doc []byte) (matter, body []byte, found bool, err error) {
	if !bytes.HasPrefix(doc, []byte("---\n")) && !bytes.HasPrefix(doc, []byte("---\r\n")) {
		return nil, doc, false, nil
	}

	// Skip the opening delimiter line, handling CRLF.
	offset := 3
	if len(doc) > offset && doc[offset] == '\r' {
		offset++
	}
	if len(doc) > offset && doc[offset] == '\n' {
		offset++
	}

	rest := doc[offset:]
	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return nil, nil, false, ErrUnclosedFrontmatter
	}

	matter = rest[:end+1]
	body = rest[end+4:]
	// Trim the delimiter line's own ending from the body.
	if len(body) > 0 && body[0] == '\r' {
		body = body[1:]
	}
	if len(body) > 0 && body[0] == '\n' {
		body = body[1:]
	}
	return matter, body, true, nil
}

// Parse extracts YAML frontmatter into matter and returns the body.
// If no frontmatter is present, matter is left untouched and the full
// content is returned as body. Use this for dialects where frontmatter is
// optional.
func Parse[T any](doc []byte, matter *T) (body []byte, err error) {
	raw, body, found, err := Split(doc)
	if err != nil {
		return nil, err
	}
	if !found {
		return body, nil
	}
	if err := yaml.Unmarshal(raw, matter); err != nil {
		return nil, errors.Wrap(err, "parsing frontmatter")
	}
	return body, nil
}

// MustParse is like Parse but fails with ErrMissingFrontmatter when no
// frontmatter block is present. Use this for dialects that mandate one.
func MustParse[T any](doc []byte, matter *T) (body []byte, err error) {
	raw, body, found, err := Split(doc)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrMissingFrontmatter
	}
	if err := yaml.Unmarshal(raw, matter); err != nil {
		return nil, errors.Wrap(err, "parsing frontmatter")
	}
	return body, nil
}

// ParseMap extracts frontmatter as a flat string map, preserving keys the
// caller has no schema for. Scalar values are stringified; nested values
// keep their YAML flow rendering. Returns a nil map when no frontmatter is
// present.
func ParseMap(doc []byte) (fields map[string]string, body []byte, err error) {
	raw, body, found, err := Split(doc)
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return nil, body, nil
	}

	var generic map[string]any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return nil, nil, errors.Wrap(err, "parsing frontmatter")
	}
	if len(generic) == 0 {
		return nil, body, nil
	}

	fields = make(map[string]string, len(generic))
	for k, v := range generic {
		fields[k] = stringify(v)
	}
	return fields, body, nil
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, stringify(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(val)
	}
}

// Format renders a document with YAML frontmatter: the matter struct
// wrapped in "---" delimiters, followed by the body.
func Format(matter any, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(matter); err != nil {
		return nil, errors.Wrap(err, "encoding frontmatter")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "encoding frontmatter")
	}

	buf.WriteString("---\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			buf.WriteString("\n")
		}
	}

	return buf.Bytes(), nil
}
