// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

package netlist

import (
	"io"

	"github.com/goccy/go-yaml"
)

type yamlGate struct {
	ID     int      `yaml:"id"`
	Kind   string   `yaml:"kind"`
	Output string   `yaml:"output"`
	Inputs []string `yaml:"inputs"`
}

type yamlNetlist struct {
	Inputs []string   `yaml:"inputs"`
	Output string     `yaml:"output"`
	Const  string     `yaml:"const,omitempty"`
	Gates  []yamlGate `yaml:"gates"`
}

// EncodeYAML writes the netlist in YAML form, for interchange with tools that
// do not consume SystemVerilog.
func (nl *Netlist) EncodeYAML(w io.Writer) error {
	out := yamlNetlist{
		Inputs: nl.Inputs,
		Output: nl.Output,
		Const:  nl.Const,
		Gates:  make([]yamlGate, 0, len(nl.Gates)),
	}
	for _, g := range nl.Gates {
		out.Gates = append(out.Gates, yamlGate{
			ID:     g.ID,
			Kind:   g.Kind.String(),
			Output: g.Output,
			Inputs: g.Inputs,
		})
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
