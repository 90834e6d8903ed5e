package processor

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ValidateJSON accepts exactly one JSON value
func ValidateJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("unexpected data after top-level value")
	}
	return nil
}

// ValidateYAML accepts any stream of well-formed YAML documents
func ValidateYAML(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// ValidateTOML accepts a well-formed TOML document
func ValidateTOML(data []byte) error {
	var v map[string]any
	return toml.Unmarshal(data, &v)
}

// ValidateXML accepts a well-formed XML document with a root element
func ValidateXML(data []byte) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return err
	}
	if doc.Root() == nil {
		return errors.New("document has no root element")
	}
	return nil
}
