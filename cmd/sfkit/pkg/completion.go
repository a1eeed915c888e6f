// SPDX-FileCopyrightText: Copyright (c) 2026 sfkit authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sfkit

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
	cli "github.com/urfave/cli/v2"
)

// completionScripts maps shell name to the script printed by
// 'sfkit completion <shell>'. Every script shells out to
// 'sfkit --generate-bash-completion', urfave/cli's hidden hook that
// prints candidate words for the current command line.
var completionScripts = map[string]string{
	"bash": `_sfkit() {
    local cur words
    cur="${COMP_WORDS[COMP_CWORD]}"
    words=$(${COMP_WORDS[0]} --generate-bash-completion "${COMP_WORDS[@]:1:$COMP_CWORD}")
    COMPREPLY=($(compgen -W "${words}" -- "${cur}"))
}
complete -o default -F _sfkit sfkit
# install: eval "$(sfkit completion bash)" in ~/.bashrc
`,
	"zsh": `_sfkit() {
    local -a candidates
    candidates=(${(f)"$(${words[1]} --generate-bash-completion ${words:1:$CURRENT-1})"})
    _describe 'sfkit' candidates
}
compdef _sfkit sfkit
# install: eval "$(sfkit completion zsh)" in ~/.zshrc
`,
	"fish": `complete -c sfkit -f -a '(sfkit --generate-bash-completion (commandline -cop))'
# install: sfkit completion fish > ~/.config/fish/completions/sfkit.fish
`,
}

func completionCommand() *cli.Command {
	shells := lo.Keys(completionScripts)
	sort.Strings(shells)
	return &cli.Command{
		Name:  "completion",
		Usage: "Print a shell completion script",
		Subcommands: lo.Map(shells, func(shell string, _ int) *cli.Command {
			return &cli.Command{
				Name:  shell,
				Usage: fmt.Sprintf("Completion script for %s", shell),
				Action: func(c *cli.Context) error {
					fmt.Fprint(c.App.Writer, completionScripts[shell])
					return nil
				},
			}
		}),
	}
}
