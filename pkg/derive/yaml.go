package derive

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Load reads field expressions from YAML and compiles them. The document is
// a mapping of field name to Exprs:
//
//	age:
//	  min: 'country == "US" ? 21 : 18'
func Load(r io.Reader) (*Deriver, error) {
	var fields map[string]Exprs
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fields); err != nil && err != io.EOF {
		return nil, fmt.Errorf("derive: decode yaml: %w", err)
	}
	return Compile(fields)
}
