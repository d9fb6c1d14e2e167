// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/relctl/relctl/internal/config"
)

// NewGlobalFlags returns the flags every query command shares.
func NewGlobalFlags() (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
	}

	return
}

// NewServerFlag constructs the "server" flag, resolving through env and the
// optionally namespaced config file. ns is the subcommand namespace.
func NewServerFlag(ns string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:    "server",
		Usage:   "the Octopus server URL",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("RELCTL_SERVER"),
			cli.EnvVar("OCTOPUS_CLI_SERVER"),
		),
	}
	return NameSpacedValueChainFlagFromConfigFile(ns, config.Config.Source, flag)
}

// NewAPIKeyFlag constructs the "api-key" flag. The key never resolves from
// the config file; flag, env, or the interactive prompt only.
func NewAPIKeyFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "api-key",
		Usage:   "the Octopus API key",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("RELCTL_API_KEY"),
			cli.EnvVar("OCTOPUS_CLI_API_KEY"),
		),
	}
}

// NewSpaceFlag constructs the "space" flag with env and config sources.
func NewSpaceFlag(ns string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:    "space",
		Usage:   "the Octopus space name",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("RELCTL_SPACE"),
		),
	}
	return NameSpacedValueChainFlagFromConfigFile(ns, config.Config.Source, flag)
}

// NewProjectFlag constructs the "project" flag with env and config sources.
func NewProjectFlag(ns string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:    "project",
		Usage:   "the project whose releases are compared",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("RELCTL_PROJECT"),
		),
	}
	return NameSpacedValueChainFlagFromConfigFile(ns, config.Config.Source, flag)
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config
// file sources to the given flag's Sources chain. A missing config file
// leaves the chain untouched.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	if path == "" {
		return flag
	}

	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
