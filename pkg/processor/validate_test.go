package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name     string
		validate Validator
		input    string
		wantErr  bool
	}{
		{"json object", ValidateJSON, `{"a": [1, 2, {"b": null}]}`, false},
		{"json scalar", ValidateJSON, `"text"`, false},
		{"json trailing whitespace", ValidateJSON, "{}\n\n", false},
		{"json unquoted value", ValidateJSON, `{"a": localhost}`, true},
		{"json trailing data", ValidateJSON, `{} {}`, true},
		{"json empty", ValidateJSON, ``, true},

		{"yaml mapping", ValidateYAML, "db:\n  host: localhost\n  port: 5432\n", false},
		{"yaml multi document", ValidateYAML, "a: 1\n---\nb: 2\n", false},
		{"yaml empty", ValidateYAML, "", false},
		{"yaml bad indentation", ValidateYAML, "a:\n  b: 1\n c: 2\n", true},

		{"toml table", ValidateTOML, "[db]\nhost = \"localhost\"\nport = 5432\n", false},
		{"toml unquoted string", ValidateTOML, "host = localhost\n", true},
		{"toml duplicate key", ValidateTOML, "a = 1\na = 2\n", true},

		{"xml document", ValidateXML, `<?xml version="1.0"?><config><db host="localhost"/></config>`, false},
		{"xml unclosed", ValidateXML, `<config><db></config>`, true},
		{"xml no root", ValidateXML, `just text`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validate([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
