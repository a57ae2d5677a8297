package main

import (
	laudsyaml "github.com/fwojciec/lauds/yaml"
)

// Run executes the config command.
func (c *ConfigCmd) Run(deps *Dependencies) error {
	return laudsyaml.Encode(deps.Stdout, deps.Config)
}
