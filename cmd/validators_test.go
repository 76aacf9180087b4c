package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleValidatorCommands_RestrictTheRun(t *testing.T) {
	tests := []struct {
		command string
		want    string
	}{
		{command: "factories", want: "factories"},
		{command: "proxy", want: "proxy"},
		{command: "suites", want: "suites"},
	}

	for _, tc := range tests {
		t.Run(tc.command, func(t *testing.T) {
			stub := &stubRunner{}
			swapRunner(t, stub)

			_, err := execute(t, tc.command, "./repo")
			require.NoError(t, err)

			assert.Equal(t, []string{tc.want}, stub.args.Only)
			require.Len(t, stub.args.Paths, 1)
			assert.Equal(t, "./repo", string(stub.args.Paths[0]))
		})
	}
}

func TestSingleValidatorCommands_SurfaceRunnerFailure(t *testing.T) {
	stub := &stubRunner{runErr: assert.AnError}
	swapRunner(t, stub)

	_, err := execute(t, "suites", "./repo")
	require.Error(t, err)
}
