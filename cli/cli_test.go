package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user-none/infoscreens/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestInitConfigStdout(t *testing.T) {
	out, err := execute(t, "init-config")
	require.NoError(t, err)

	cfg, err := config.Parse(bytes.NewBufferString(out))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestInitConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "infoscreens.yaml")

	_, err := execute(t, "init-config", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Must have at least two players.")

	_, err = execute(t, "init-config", path)
	assert.ErrorIs(t, err, ErrConfigExists)

	_, err = execute(t, "init-config", "--force", path)
	assert.NoError(t, err)
}

func TestMissingConfigFile(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "init-config")
	assert.Error(t, err)
}

// prepare parses args for sub, runs the pre-run hook and loads the config.
func prepare(t *testing.T, sub string, args ...string) *config.Config {
	t.Helper()
	a := &app{v: viper.New()}
	cmd, _, err := newRootCmd(a).Find([]string{sub})
	require.NoError(t, err)
	require.NoError(t, cmd.ParseFlags(args))
	require.NoError(t, a.preRun(cmd, nil))

	cfg, err := a.load()
	require.NoError(t, err)
	return cfg
}

func TestFlagsOverrideConfig(t *testing.T) {
	path := writeFile(t, "deck.yaml", `
window:
  width: 200
  height: 100
  scale: 2
deck:
  - kind: splash
    name: only
    titles: [Only]
`)

	cfg := prepare(t, "run", "--config", path)
	assert.Equal(t, 200, cfg.Window.Width)
	assert.Equal(t, 2, cfg.Window.Scale)
	assert.False(t, cfg.Once)
	require.Len(t, cfg.Deck, 1)

	cfg = prepare(t, "run", "--config", path, "--scale", "3", "--once")
	assert.Equal(t, 200, cfg.Window.Width)
	assert.Equal(t, 3, cfg.Window.Scale)
	assert.True(t, cfg.Once)

	cfg = prepare(t, "preview", "--config", path, "--width", "80")
	assert.Equal(t, 80, cfg.Window.Width)
	assert.Equal(t, 100, cfg.Window.Height)
}

func TestEnvOverridesConfig(t *testing.T) {
	path := writeFile(t, "deck.yaml", "window:\n  height: 100\n")
	t.Setenv("INFOSCREENS_WINDOW_HEIGHT", "90")

	cfg := prepare(t, "preview", "--config", path)
	assert.Equal(t, 90, cfg.Window.Height)
	assert.Len(t, cfg.Deck, len(config.Default().Deck))
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		in   string
		want termenv.Profile
	}{
		{"ascii", termenv.Ascii},
		{"ANSI", termenv.ANSI},
		{"ansi256", termenv.ANSI256},
		{"truecolor", termenv.TrueColor},
	}
	for _, tt := range tests {
		got, err := parseProfile(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := parseProfile("sepia")
	assert.Error(t, err)
}
