package commands

import (
	"fmt"
	"strings"

	"github.com/gerunddev/wikidoc/internal/config"
	"github.com/gerunddev/wikidoc/internal/render"
)

// parseOpts holds the options of the parse command
type parseOpts struct {
	format render.Format
	nest   bool
	input  string
}

func (o parseOpts) inputName() string {
	if o.input == "-" {
		return "<stdin>"
	}
	return o.input
}

// parseOptions reads --format/-f, --nest and --flat flags, starting from the
// config defaults. The first positional argument is the input file.
func parseOptions(args []string, cfg *config.Config) (parseOpts, error) {
	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return parseOpts{}, err
	}
	opts := parseOpts{format: format, nest: cfg.Nest, input: "-"}

	inputSet := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--format" || arg == "-f":
			if i+1 >= len(args) {
				return parseOpts{}, fmt.Errorf("%s needs a value", arg)
			}
			i++
			if opts.format, err = render.ParseFormat(args[i]); err != nil {
				return parseOpts{}, err
			}
		case strings.HasPrefix(arg, "--format="):
			if opts.format, err = render.ParseFormat(strings.TrimPrefix(arg, "--format=")); err != nil {
				return parseOpts{}, err
			}
		case arg == "--nest":
			opts.nest = true
		case arg == "--flat":
			opts.nest = false
		case strings.HasPrefix(arg, "-") && arg != "-":
			return parseOpts{}, fmt.Errorf("unknown flag: %s", arg)
		default:
			if inputSet {
				return parseOpts{}, fmt.Errorf("unexpected argument: %s", arg)
			}
			opts.input = arg
			inputSet = true
		}
	}

	return opts, nil
}
