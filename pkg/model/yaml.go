package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts `userAgent: "*"` as well as `userAgent: ["a", "b"]`.
func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v string
		if err := node.Decode(&v); err != nil {
			return err
		}
		*l = StringList{v}
		return nil
	case yaml.SequenceNode:
		var vs []string
		if err := node.Decode(&vs); err != nil {
			return err
		}
		*l = StringList(vs)
		return nil
	default:
		return fmt.Errorf("line %d: expected string or list of strings", node.Line)
	}
}
