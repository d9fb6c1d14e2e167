// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/relctl/relctl/internal/meta"
)

const bashCompletionScript = `# bash completion for relctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_relctl()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "rd rq vq completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
  local common="--color -c --output -o --server --api-key --space --project"

    case "$cmd" in
        rd)
      local opts="$common --old --new --pick --mirror --context --setvars"
            ;;
        rq)
      local opts="$common --limit -l --filter -f"
            ;;
        vq)
      local opts="$common --release -r --filter -f"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
        return 0
    fi

  COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
  return 0
}

complete -F _relctl relctl
`

const zshCompletionScript = `#compdef relctl

_relctl() {
  local -a cmds
  cmds=(
    'rd:release diff'
    'rq:release query'
    'vq:variable query'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)'
  '--server[Octopus server URL]:url'
  '--api-key[Octopus API key]:key'
  '--space[Octopus space name]:space'
  '--project[Octopus project name]:project'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'relctl commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    rd)
      _arguments -C \
        $common \
        '--old[previous release version]:version' \
        '--new[new release version]:version' \
        '--pick[pick the two releases interactively]' \
        '--mirror[package mirror]:mirror' \
        '--context[context lines in unified diffs]:lines' \
        '--setvars[emit Octopus output variables]'
      ;;
    rq)
      _arguments -C \
        $common \
        '(-l --limit)'{-l,--limit}'[limit releases returned]:limit' \
        '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
      ;;
    vq)
      _arguments -C \
        $common \
        '(-r --release)'{-r,--release}'[release version to inspect]:version' \
        '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _relctl relctl relctl
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(os.Stdout, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(os.Stdout, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: relctl completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "relctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
