package opt

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/isolation/ai"
	"github.com/nelhage/isolation/isolation"
)

func TestLoad(t *testing.T) {
	defer func() { Defaults = File{} }()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "depth": 6,
  "heuristic": "custom",
  "size": "7x7",
  "limit": "250ms",
  "db": "/tmp/games.db"
}`), 0644))
	require.NoError(t, Load(path))
	assert.Equal(t, 6, Defaults.Depth)
	assert.Equal(t, ai.Custom, Defaults.Heuristic)
	assert.Equal(t, 250*time.Millisecond, Defaults.LimitOr(time.Second))

	db, err := DefaultDB()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/games.db", db)

	var o Agent
	var b Board
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	o.AddFlags(fs)
	b.AddFlags(fs)
	require.NoError(t, fs.Parse([]string{"-depth", "2"}))
	assert.Equal(t, ai.Config{Depth: 2, Heuristic: ai.Custom}, o.BuildConfig(nil))
	cfg, err := b.Config()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Width)
}

func TestLoadErrors(t *testing.T) {
	defer func() { Defaults = File{} }()
	dir := t.TempDir()

	assert.Error(t, Load(filepath.Join(dir, "missing.json")), "explicit path must exist")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"heuristic": "clever"}`), 0644))
	assert.Error(t, Load(bad))

	bad = filepath.Join(dir, "limit.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"limit": "soon"}`), 0644))
	assert.Error(t, Load(bad))
	assert.Equal(t, File{}, Defaults)
}

func TestPlayer(t *testing.T) {
	o := Agent{Depth: 3}
	board := isolation.Config{}
	for _, spec := range []string{"agent", "agent:2", "greedy", "random", "random:7"} {
		pl, done, err := o.Player(spec, isolation.Player1, board)
		require.NoError(t, err, spec)
		assert.NotNil(t, pl)
		done()
	}
	pl, _, err := o.Player("agent:5", isolation.Player2, board)
	require.NoError(t, err)
	ag := pl.(*ai.Agent)
	assert.Equal(t, 5, ag.Config().Depth)
	assert.Equal(t, isolation.Player2, ag.Player())

	for _, spec := range []string{"agent:x", "random:-1", "alphazero", "iei:/nonexistent/engine"} {
		_, _, err := o.Player(spec, isolation.Player1, board)
		assert.Error(t, err, spec)
	}
}
