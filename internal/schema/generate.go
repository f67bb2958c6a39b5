// Package schema describes the towelhost configuration file as JSON Schema,
// for editors that validate the global and sidecar TOML files.
package schema

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"

	"github.com/towelWet/TowelHost/pkg/config"
)

const (
	draft = "https://json-schema.org/draft/2020-12/schema"
	title = "towelhost configuration"
)

// documented lists the defaults the loader applies, so editors can show them.
var documented = []struct {
	section, key string
	value        any
}{
	{"HostConfig", "placeholder_name", config.DefaultPlaceholderName},
	{"SearchConfig", "extension", config.DefaultExtension},
	{"TrialConfig", "sample_rate", config.DefaultTrialSampleRate},
	{"TrialConfig", "block_size", config.DefaultTrialBlockSize},
	{"AudioConfig", "sample_rate", config.DefaultSampleRate},
	{"AudioConfig", "block_size", config.DefaultBlockSize},
	{"AudioConfig", "inputs", config.DefaultChannels},
	{"AudioConfig", "outputs", config.DefaultChannels},
}

// Generate reflects config.Config into a schema with defaults filled in.
func Generate() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct:             true,
		AllowAdditionalProperties:  false,
		RequiredFromJSONSchemaTags: true,
	}

	s := r.Reflect(&config.Config{})
	s.Version = draft
	s.Title = title

	for _, d := range documented {
		section, ok := s.Definitions[d.section]
		if !ok || section.Properties == nil {
			continue
		}

		if prop, ok := section.Properties.Get(d.key); ok {
			prop.Default = d.value
		}
	}

	return s
}

// GenerateJSON renders Generate as JSON terminated by a newline. compact
// drops the indentation.
func GenerateJSON(compact bool) ([]byte, error) {
	marshal := func(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }
	if compact {
		marshal = json.Marshal
	}

	data, err := marshal(Generate())
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode schema")
	}

	return append(data, '\n'), nil
}
