package model

import "gopkg.in/yaml.v3"

// FlexString accepts both string and numeric scalars from frontmatter, since
// authors write fields like year and pages either way.
type FlexString string

func (s *FlexString) UnmarshalYAML(value *yaml.Node) error {
	*s = FlexString(value.Value)
	return nil
}
