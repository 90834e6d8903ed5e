package processor

import (
	"strings"

	"github.com/arthur-debert/distfile/pkg/errors"
	"github.com/arthur-debert/distfile/pkg/registry"
	"github.com/arthur-debert/distfile/pkg/types"
)

// Processor type names accepted in a config entry's "type" field
const (
	GenericType = "generic"
	JSONType    = "json"
	YAMLType    = "yaml"
	TOMLType    = "toml"
	XMLType     = "xml"
)

// LegacyGenericType is the class name older manifests use for the generic processor
const LegacyGenericType = `Cube\ComposerDistInstaller\Processor\Generic`

var processors = registry.New[types.ProcessorFactory]()

func init() {
	registry.MustRegister(processors, GenericType, func(io types.IO, fs types.FS) types.Processor {
		return NewGeneric(io, WithFS(fs))
	})
	registerValidating(JSONType, ValidateJSON)
	registerValidating(YAMLType, ValidateYAML)
	registerValidating(TOMLType, ValidateTOML)
	registerValidating(XMLType, ValidateXML)

	registry.MustAlias(processors, LegacyGenericType, GenericType)
}

func registerValidating(name string, v Validator) {
	registry.MustRegister(processors, name, func(io types.IO, fs types.FS) types.Processor {
		return NewGeneric(io, WithFS(fs), WithValidator(name, v))
	})
}

// Lookup returns the factory for a processor type. An empty name selects
// the generic processor.
func Lookup(name string) (types.ProcessorFactory, error) {
	if name == "" {
		name = GenericType
	}
	factory, err := processors.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrProcessorUnknown,
			"unknown processor type %q (available: %s)", name, strings.Join(processors.List(), ", ")).
			WithDetail("field", "type").
			WithDetail("value", name)
	}
	return factory, nil
}

// Canonical maps a type name or alias to its registered name
func Canonical(name string) string {
	if name == "" {
		return GenericType
	}
	canonical, _ := processors.Canonical(name)
	return canonical
}

// Names lists the registered processor types
func Names() []string {
	return processors.List()
}

// DetectType picks a processor for a destination file. Every file gets the
// generic processor; format checking is opt-in through the "type" field.
func DetectType(file string) string {
	return GenericType
}
