package internal

import (
	"testing"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("BADGER_FILEPATH", t.TempDir())

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)

	req.Equal("localhost:8080", config.Address())
	req.Equal(50, config.BacklogLimit)
	req.Equal(4, config.RelayLanes)
	req.True(config.SeedChannels)
	req.Empty(config.Words())
}

func TestConfig_Words(t *testing.T) {
	req := require.New(t)
	config := Config{CensoredWords: " badger, ,snake ,"}

	req.Equal([]string{"badger", "snake"}, config.Words())
}

func TestCharacterRune(t *testing.T) {
	req := require.New(t)

	r, err := CharacterRune("#")
	req.NoError(err)
	req.Equal('#', r)

	_, err = CharacterRune("##")
	req.Error(err)
}
