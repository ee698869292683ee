package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.GetBool(ConfigDebug))
	assert.False(t, cfg.GetBool(ConfigBotPlaysX))
	assert.True(t, cfg.GetBool(ConfigBotPlaysO))
	assert.Equal(t, "random", cfg.GetString(ConfigTiebreak))
	assert.Equal(t, uint64(0), cfg.GetUint64(ConfigSeed))
	assert.Equal(t, 1000, cfg.GetInt(ConfigAutoplayGames))
	assert.Equal(t, 4, cfg.GetInt(ConfigAutoplayThreads))
}

func TestLoadFlags(t *testing.T) {
	cfg := &Config{}
	err := cfg.Load([]string{"--tiebreak", "lowest", "--bot-plays-x", "--autoplay-games=20", "autoplay", "-games", "5"})
	require.NoError(t, err)
	assert.Equal(t, "lowest", cfg.GetString(ConfigTiebreak))
	assert.True(t, cfg.GetBool(ConfigBotPlaysX))
	assert.Equal(t, 20, cfg.GetInt(ConfigAutoplayGames))
	assert.Equal(t, []string{"autoplay", "-games", "5"}, cfg.Args())
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("TICTACTOE_BOT_PLAYS_O", "false")
	t.Setenv("TICTACTOE_SEED", "99")
	cfg := &Config{}
	require.NoError(t, cfg.Load(nil))
	assert.False(t, cfg.GetBool(ConfigBotPlaysO))
	assert.Equal(t, uint64(99), cfg.GetUint64(ConfigSeed))

	// flags win over the environment
	cfg = &Config{}
	require.NoError(t, cfg.Load([]string{"--seed", "3"}))
	assert.Equal(t, uint64(3), cfg.GetUint64(ConfigSeed))
}

func TestLoadRejectsBadValues(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Load([]string{"--tiebreak", "best"}))
	cfg = &Config{}
	assert.Error(t, cfg.Load([]string{"--autoplay-threads", "0"}))
	cfg = &Config{}
	assert.Error(t, cfg.Load([]string{"--no-such-flag"}))
}
