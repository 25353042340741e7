package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/eriklarko/primecubes/src/config"
	"github.com/eriklarko/primecubes/src/environment"
	helpers_test "github.com/eriklarko/primecubes/src/helpers"
	"github.com/eriklarko/primecubes/src/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type runResult struct {
	code   int
	stdout string
	stderr string
}

func runWithInput(t *testing.T, input string, args ...string) runResult {
	t.Helper()

	environment.ForceSetIsInteractive(false)
	defaultLogger := slog.Default()
	t.Cleanup(func() {
		environment.ResetIsInteractive()
		slog.SetDefault(defaultLogger)
	})

	var stdout, stderr bytes.Buffer
	ui := tui.New()
	ui.SetInput(helpers_test.OpenTempInput(t, input))
	ui.SetOutput(&stdout)

	code := run(args, ui, &stderr)
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestRun_ExpressionFromArgs(t *testing.T) {
	result := runWithInput(t, "", "a+b")

	assert.Equal(t, 0, result.code)
	assert.Contains(t, result.stdout, "Truth table:\n")
	assert.Contains(t, result.stdout, "Primitive cubes:\n a\t b\t F\n|0\t|0\t|0\t\n|x\t|1\t|1\t\n|1\t|x\t|1\t\n")
	assert.NotContains(t, result.stdout, "Binary tree of solutions")
}

func TestRun_ArgsAreJoined(t *testing.T) {
	result := runWithInput(t, "", "a", "+", "b")

	assert.Equal(t, 0, result.code)
	assert.Contains(t, result.stdout, "|x\t|1\t|1\t\n")
}

func TestRun_ExpressionFromStdin(t *testing.T) {
	result := runWithInput(t, "a*b\nignored\n", "-tree")

	assert.Equal(t, 0, result.code)
	assert.NotContains(t, result.stdout, tui.Prompt)
	assert.Contains(t, result.stdout, "Binary tree of solutions\n")
	assert.Contains(t, result.stdout, "|1\t|1\t|1\t\n")
}

func TestRun_UserErrors(t *testing.T) {
	tests := map[string]string{
		"ab":   "incorrect expression\n",
		"(a+b": "incorrect expression\n",
		"a**b": "wrong operand\n",
	}

	for expression, expected := range tests {
		t.Run(expression, func(t *testing.T) {
			result := runWithInput(t, expression+"\n")

			assert.Equal(t, 1, result.code)
			assert.Equal(t, expected, result.stdout)
		})
	}
}

func TestRun_NoInput(t *testing.T) {
	result := runWithInput(t, "")

	assert.Equal(t, 1, result.code)
	assert.Empty(t, result.stdout)
	assert.Contains(t, result.stderr, "no expression given")
}

func TestRun_YAML(t *testing.T) {
	result := runWithInput(t, "", "-format", "yaml", "-verify", "a+b")
	require.Equal(t, 0, result.code, result.stderr)

	var decoded struct {
		Summary struct {
			Rows     int    `yaml:"rows"`
			Satcount *int64 `yaml:"satcount"`
		} `yaml:"summary"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(result.stdout), &decoded))
	assert.Equal(t, 4, decoded.Summary.Rows)
	require.NotNil(t, decoded.Summary.Satcount)
	assert.Equal(t, int64(3), *decoded.Summary.Satcount)
}

func TestRun_ConfigFile(t *testing.T) {
	path := helpers_test.CreateTempFileWithContents(t, "output: yaml\nskip-whitespace: true\nlog-level: debug\n")

	t.Run("values from file", func(t *testing.T) {
		result := runWithInput(t, "a + b\n", "-config", path)

		assert.Equal(t, 0, result.code, result.stderr)
		assert.Contains(t, result.stdout, "postfix: ab+")
		assert.Contains(t, result.stderr, "parsed expression")
	})

	t.Run("flags win", func(t *testing.T) {
		result := runWithInput(t, "a + b\n", "-config", path, "-format", "text", "-log-level", "error")

		assert.Equal(t, 0, result.code, result.stderr)
		assert.Contains(t, result.stdout, "Truth table:\n")
		assert.NotContains(t, result.stderr, "parsed expression")
	})

	t.Run("missing file", func(t *testing.T) {
		result := runWithInput(t, "a+b\n", "-config", path+".missing")

		assert.Equal(t, 1, result.code)
		assert.Contains(t, result.stderr, "failed to read config file")
	})
}

func TestRun_WriteConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "primecubes.yaml")

	result := runWithInput(t, "", "-write-config", path, "-format", "yaml", "-tree", "-log-level", "debug")
	require.Equal(t, 0, result.code, result.stderr)
	assert.Empty(t, result.stdout, "no expression should be analyzed")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	written, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config.OutputYAML, written.Output)
	assert.True(t, written.ShowTree)
	assert.False(t, written.Verify)
	assert.Equal(t, "debug", written.LogLevel)

	t.Run("written file drives a later run", func(t *testing.T) {
		result := runWithInput(t, "a+b\n", "-config", path)

		assert.Equal(t, 0, result.code, result.stderr)
		assert.Contains(t, result.stdout, "prime-implicants:")
	})
}

func TestRun_InvalidFlags(t *testing.T) {
	assert.Equal(t, 2, runWithInput(t, "", "-format", "xml", "a+b").code)
	assert.Equal(t, 2, runWithInput(t, "", "-no-such-flag").code)
}
