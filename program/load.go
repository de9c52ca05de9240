// SPDX-License-Identifier: MIT

package program

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadYAML decodes and validates a YAML program. Unknown fields are rejected.
func LoadYAML(r io.Reader) (*Program, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Program
	if err := dec.Decode(&p); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode program")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Load reads a program file: .yaml and .yml are YAML, anything else is the
// text form.
func Load(path string) (*Program, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open program")
		}
		defer f.Close()

		p, err := LoadYAML(f)
		return p, errors.Wrapf(err, "%s", path)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read program")
	}
	p, err := ParseText(string(src))

	return p, errors.Wrapf(err, "%s", path)
}

// Encode writes p as YAML; text programs round-trip through it to LoadYAML.
func (p *Program) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return errors.Wrap(err, "encode program")
	}

	return errors.Wrap(enc.Close(), "encode program")
}
