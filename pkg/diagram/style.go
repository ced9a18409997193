package diagram

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

type (
	StyleProperty struct {
		Key   string
		Value string
	}

	// Style is an ordered set of style properties. Unlike a map, the order properties were set in is kept,
	// which is the order they are serialized in.
	Style []StyleProperty
)

// ErrInvalidStyleKey is returned for style keys that cannot be encoded as attributes of a style descriptor.
var ErrInvalidStyleKey = errors.New("invalid style key")

func NewStyle(kv ...string) Style {
	if len(kv)%2 != 0 {
		panic(fmt.Errorf("NewStyle requires key/value pairs, got %d arguments", len(kv)))
	}
	s := make(Style, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		s = s.Set(kv[i], kv[i+1])
	}
	return s
}

func (s Style) Len() int {
	return len(s)
}

func (s Style) Get(key string) (string, bool) {
	for _, p := range s {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Set overwrites the value of key in place if it is already present, otherwise appends it.
func (s Style) Set(key, value string) Style {
	for i, p := range s {
		if p.Key == key {
			s[i].Value = value
			return s
		}
	}
	return append(s, StyleProperty{Key: key, Value: value})
}

// Merge returns a copy of s with every property of other set on it.
func (s Style) Merge(other Style) Style {
	merged := s.Clone()
	for _, p := range other {
		merged = merged.Set(p.Key, p.Value)
	}
	return merged
}

func (s Style) Clone() Style {
	if s == nil {
		return nil
	}
	c := make(Style, len(s))
	copy(c, s)
	return c
}

// Validate reports every key of s that is not a valid XML name or is reserved by the native encoding.
func (s Style) Validate() error {
	var errs error
	for _, p := range s {
		errs = errors.Join(errs, ValidateStyleKey(p.Key))
	}
	return errs
}

func ValidateStyleKey(key string) error {
	if key == AsAttr {
		return fmt.Errorf("%w %q: reserved", ErrInvalidStyleKey, key)
	}
	if !isXMLName(key) {
		return fmt.Errorf("%w %q: not a valid XML name", ErrInvalidStyleKey, key)
	}
	return nil
}

// isXMLName accepts unprefixed XML names; ':' is excluded since it would be read as a namespace.
func isXMLName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)):
		default:
			return false
		}
	}
	return true
}

func (s Style) String() string {
	var sb strings.Builder
	for _, p := range s {
		fmt.Fprintf(&sb, "%s=%s;", p.Key, p.Value)
	}
	return sb.String()
}

// UnmarshalYAML decodes a mapping node, keeping the order the keys appeared in the document.
func (s *Style) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("style must be a mapping, got %s at line %d", kindName(value.Kind), value.Line)
	}
	style := make(Style, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("style property %q must be a scalar, got %s at line %d", k.Value, kindName(v.Kind), v.Line)
		}
		if err := ValidateStyleKey(k.Value); err != nil {
			return fmt.Errorf("style property at line %d: %w", k.Line, err)
		}
		style = style.Set(k.Value, v.Value)
	}
	*s = style
	return nil
}

func (s Style) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range s {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Value},
		)
	}
	return node, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
