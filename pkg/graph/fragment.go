// This file implements the fragment interchange form: a standalone
// producer and its filters serialized as a YAML document. Paste uses it
// both for the incoming clipboard payload and for the before-state a
// command captures so it can restore a producer's filters on undo.

package graph

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type fragmentDoc struct {
	Producer fragmentNode `yaml:"producer"`
}

type fragmentNode struct {
	Properties map[string]string `yaml:"properties,omitempty"`
	Filters    []fragmentFilter  `yaml:"filters,omitempty"`
}

type fragmentFilter struct {
	Properties map[string]string `yaml:"properties,omitempty"`
}

// MarshalFragment serializes a producer and its filters to the fragment
// interchange form. Children are not serialized; a fragment is always a
// flat producer.
func MarshalFragment(p *Producer) (string, error) {
	doc := fragmentDoc{
		Producer: fragmentNode{Properties: p.props.toMap()},
	}
	for _, f := range p.filters {
		doc.Producer.Filters = append(doc.Producer.Filters, fragmentFilter{
			Properties: f.props.toMap(),
		})
	}
	out, err := yaml.Marshal(&doc)
	if err != nil {
		return "", fmt.Errorf("marshal fragment: %w", err)
	}
	return string(out), nil
}

// ParseFragment parses the fragment interchange form back into a
// standalone producer carrying zero or more filters. A well-formed
// document with no filters is a valid result; callers decide whether an
// empty fragment is worth acting on.
func ParseFragment(text string) (*Producer, error) {
	var doc fragmentDoc
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}
	p := &Producer{}
	p.props.fromMap(doc.Producer.Properties)
	for _, ff := range doc.Producer.Filters {
		f := &Filter{}
		f.props.fromMap(ff.Properties)
		p.filters = append(p.filters, f)
	}
	return p, nil
}
