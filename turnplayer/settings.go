package turnplayer

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/tictactoe/config"
	"github.com/domino14/tictactoe/search/alphabeta"
)

type GameOptions struct {
	BotPlaysX bool
	BotPlaysO bool
	Tiebreak  string
	Seed      uint64
}

func (opts *GameOptions) SetDefaults(cfg *config.Config) {
	opts.BotPlaysX = cfg.GetBool(config.ConfigBotPlaysX)
	opts.BotPlaysO = cfg.GetBool(config.ConfigBotPlaysO)
	if opts.Tiebreak == "" {
		opts.Tiebreak = cfg.GetString(config.ConfigTiebreak)
		log.Debug().Msgf("using default tiebreak %v", opts.Tiebreak)
	}
	if opts.Seed == 0 {
		opts.Seed = cfg.GetUint64(config.ConfigSeed)
	}
}

func (opts *GameOptions) SetTiebreak(name string) error {
	name = strings.ToLower(name)
	if _, ok := alphabeta.PickerByName(name, 0); !ok {
		return fmt.Errorf("%v is not a supported tiebreak; valid options: 'random', 'lowest'", name)
	}
	opts.Tiebreak = name
	return nil
}

// SetBot sets whether the bot holds the X ("botx") or O ("boto") seat.
func (opts *GameOptions) SetBot(seat string, value string) error {
	v, err := ParseBool(value)
	if err != nil {
		return err
	}
	switch seat {
	case "botx":
		opts.BotPlaysX = v
	case "boto":
		opts.BotPlaysO = v
	default:
		return fmt.Errorf("unknown seat %v; valid options: 'botx', 'boto'", seat)
	}
	return nil
}

// Picker returns the tie-breaking picker for these options.
func (opts *GameOptions) Picker() alphabeta.Picker {
	p, ok := alphabeta.PickerByName(opts.Tiebreak, opts.Seed)
	if !ok {
		return alphabeta.NewRandomPicker()
	}
	return p
}
