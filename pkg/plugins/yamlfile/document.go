package yamlfile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rhq-project/rhq-in-go/pkg/model"
)

var errEmptyKey = errors.New("property name has an empty segment")

// parse decodes contents into a document node. Empty contents yield an
// empty mapping.
func parse(contents string) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(contents), &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}}
	}
	return &doc, nil
}

func render(doc *yaml.Node) (string, error) {
	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// flatten collects every scalar of node under its dotted path.
func flatten(node *yaml.Node, prefix string, out model.Properties) {
	switch node.Kind {
	case yaml.DocumentNode:
		for _, n := range node.Content {
			flatten(n, prefix, out)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			flatten(node.Content[i+1], join(prefix, node.Content[i].Value), out)
		}
	case yaml.SequenceNode:
		for i, n := range node.Content {
			flatten(n, join(prefix, strconv.Itoa(i)), out)
		}
	case yaml.AliasNode:
		if node.Alias != nil {
			flatten(node.Alias, prefix, out)
		}
	case yaml.ScalarNode:
		if prefix == "" {
			return
		}
		if node.Tag == "!!null" {
			out[prefix] = ""
			return
		}
		out[prefix] = node.Value
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func splitKey(name string) ([]string, error) {
	keys := strings.Split(name, ".")
	for _, k := range keys {
		if k == "" {
			return nil, fmt.Errorf("%w: %q", errEmptyKey, name)
		}
	}
	return keys, nil
}

// set stores value at the dotted path name, creating mappings as needed.
func set(doc *yaml.Node, name, value string) error {
	keys, err := splitKey(name)
	if err != nil {
		return err
	}
	node := doc
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			node.Content = []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}
		}
		node = node.Content[0]
	}

	for i, key := range keys {
		last := i == len(keys)-1
		next, err := child(node, key, name)
		if err != nil {
			return err
		}
		if next == nil {
			next = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, next)
		}
		if last {
			if next.Kind == yaml.MappingNode && len(next.Content) > 0 || next.Kind == yaml.SequenceNode && len(next.Content) > 0 {
				return fmt.Errorf("property %q replaces a nested section", name)
			}
			*next = yaml.Node{Kind: yaml.ScalarNode, Value: value}
			if value == "" {
				next.Tag = "!!null"
			}
			return nil
		}
		node = next
	}
	return nil
}

// child returns the node under key, or nil when a mapping lacks it.
func child(node *yaml.Node, key, name string) (*yaml.Node, error) {
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == key {
				return node.Content[i+1], nil
			}
		}
		return nil, nil
	case yaml.SequenceNode:
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= len(node.Content) {
			return nil, fmt.Errorf("property %q: no element %s in sequence", name, key)
		}
		return node.Content[idx], nil
	case yaml.ScalarNode:
		if node.Value == "" || node.Tag == "!!null" {
			*node = yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			return nil, nil
		}
	}
	return nil, fmt.Errorf("property %q descends into a scalar", name)
}

// apply writes every property of props into doc.
func apply(doc *yaml.Node, props model.Properties) error {
	for _, name := range props.Names() {
		if err := set(doc, name, props[name]); err != nil {
			return err
		}
	}
	return nil
}
