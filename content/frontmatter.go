package content

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

var frontmatterFence = []byte("---")

// splitFrontmatter decodes the leading YAML frontmatter block of a content
// file into dst and returns the remaining body text. The file must open with
// a "---" fence line and close the block with another.
func splitFrontmatter(raw []byte, dst any) (string, error) {
	raw = bytes.TrimLeft(raw, "\xef\xbb\xbf")
	lines := bytes.SplitAfter(raw, []byte("\n"))
	if len(lines) == 0 || !bytes.Equal(bytes.TrimRight(lines[0], "\r\n"), frontmatterFence) {
		return "", fmt.Errorf("missing frontmatter fence")
	}

	var meta, body bytes.Buffer
	closed := false
	for _, line := range lines[1:] {
		if !closed && bytes.Equal(bytes.TrimRight(line, "\r\n"), frontmatterFence) {
			closed = true
			continue
		}
		if closed {
			body.Write(line)
		} else {
			meta.Write(line)
		}
	}
	if !closed {
		return "", fmt.Errorf("unterminated frontmatter")
	}

	if err := yaml.Unmarshal(meta.Bytes(), dst); err != nil {
		return "", fmt.Errorf("failed to decode frontmatter: %w", err)
	}
	return string(bytes.TrimSpace(body.Bytes())), nil
}
