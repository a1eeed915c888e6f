// SPDX-FileCopyrightText: Copyright (c) 2026 sfkit authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sfkit

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionCommandCoversEveryShell(t *testing.T) {
	cmd := completionCommand()
	require.Len(t, cmd.Subcommands, len(completionScripts))
	for _, sub := range cmd.Subcommands {
		assert.Contains(t, completionScripts, sub.Name)
	}
}

func TestCompletionPrintsShellScript(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{shell: "bash", want: "complete -o default -F _sfkit sfkit"},
		{shell: "zsh", want: "compdef _sfkit sfkit"},
		{shell: "fish", want: "complete -c sfkit"},
	}
	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			var buf bytes.Buffer
			app := NewApp()
			app.Writer = &buf

			require.NoError(t, app.Run([]string{"sfkit", "completion", tt.shell}))
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "--generate-bash-completion")
		})
	}
}
