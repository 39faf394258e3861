package minase

import (
	"github.com/sat1226/minase/src/tui"
)

// Run wires the CLI arguments to a Controller and drives it to completion,
// mirroring the teacher's thin main.go -> fzf.Run(...) hand-off.
func Run(args CLIArgs) error {
	cfg, err := LoadConfig(DefaultConfigPath())
	if err != nil {
		return err
	}

	renderer := tui.NewFullscreenRenderer(nil, false)
	c, err := NewController(renderer, args.Path, cfg, args.Picker)
	if err != nil {
		return err
	}
	return c.Run()
}
