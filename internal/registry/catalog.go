package registry

import (
	"github.com/emily-flambe/pong/internal/config"
	"github.com/emily-flambe/pong/internal/sim"
)

func init() {
	Register(ModeInfo{
		ID:          "classic",
		Title:       "Classic",
		Description: "One paddle, three bouncing walls. Miss once and the match is over.",
	}, factory(sim.ModeClassic, config.LoadClassic))

	Register(ModeInfo{
		ID:          "survival",
		Title:       "Survival",
		Description: "Every wall costs a life. Outlast your three lives for a high score.",
	}, factory(sim.ModeSurvival, config.LoadSurvival))

	Register(ModeInfo{
		ID:          "fortress",
		Title:       "Fortress",
		Description: "Guard all four edges at once, with a one-time reserve when lives run out.",
	}, factory(sim.ModeFortress, config.LoadFortress))
}

// factory wires a mode tag to its config loader.
func factory(mode sim.Mode, load func(string) (config.MatchConfig, error)) Factory {
	return func(opts Options) (*sim.Match, error) {
		cfg, err := load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		config.ApplyPreset(&cfg, opts.Preset)
		return sim.NewMatch(mode, cfg, opts.Seed), nil
	}
}
