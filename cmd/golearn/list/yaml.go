package list

import (
	"bytes"
	"strconv"

	"gopkg.in/yaml.v3"
)

// marshalYAML returns canonical YAML for the topic list: a top-level
// "topics" sequence whose items always carry number, id and name in that
// order.
func marshalYAML(es []entry) ([]byte, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, e := range es {
		item := &yaml.Node{Kind: yaml.MappingNode}
		item.Content = append(item.Content,
			scalarNode("number"), intNode(e.Number),
			scalarNode("id"), scalarNode(e.ID),
			scalarNode("name"), scalarNode(e.Name),
		)
		seq.Content = append(seq.Content, item)
	}
	top := &yaml.Node{Kind: yaml.MappingNode}
	top.Content = append(top.Content, scalarNode("topics"), seq)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(top); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	out = append(out, '\n')
	return out, nil
}

func scalarNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func intNode(v int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)}
}
