package minase

import (
	"fmt"
	"os"
	"strings"
)

const usageText = `usage: minase [--choosefile=OUT | --choosefiles=OUT | --choosedir=OUT] [--help] [PATH]`

// CLIArgs is the decoded command line (spec.md 6): "prog [--choosefile=OUT |
// --choosefiles=OUT | --choosedir=OUT] [--help] [PATH]". Unrecognised
// arguments print usage and exit 1.
type CLIArgs struct {
	Picker PickerState
	Path   string
	Help   bool
}

// ParseArgs parses argv (excluding argv[0]). On an unrecognised flag it
// prints usage to stderr and exits 1, matching spec.md 6's "Unrecognised
// arguments print usage and exit 1" (the teacher's src/options.go degrades
// the same way on a bad flag, via its own errorExit).
func ParseArgs(argv []string) CLIArgs {
	var args CLIArgs
	var path string
	pathSet := false

	for _, a := range argv {
		switch {
		case a == "--help" || a == "-h":
			args.Help = true
		case strings.HasPrefix(a, "--choosefile="):
			args.Picker = PickerState{Mode: PickerFile, Output: strings.TrimPrefix(a, "--choosefile=")}
		case strings.HasPrefix(a, "--choosefiles="):
			args.Picker = PickerState{Mode: PickerFiles, Output: strings.TrimPrefix(a, "--choosefiles=")}
		case strings.HasPrefix(a, "--choosedir="):
			args.Picker = PickerState{Mode: PickerDir, Output: strings.TrimPrefix(a, "--choosedir=")}
		case strings.HasPrefix(a, "-"):
			fmt.Fprintln(os.Stderr, usageText)
			os.Exit(1)
		default:
			if pathSet {
				fmt.Fprintln(os.Stderr, usageText)
				os.Exit(1)
			}
			path = a
			pathSet = true
		}
	}

	if args.Help {
		fmt.Println(usageText)
		os.Exit(0)
	}

	// If PATH is absent or not a directory, the current working directory
	// is used (spec.md 6).
	args.Path = path
	if info, err := os.Stat(path); path == "" || err != nil || !info.IsDir() {
		if cwd, err := os.Getwd(); err == nil {
			args.Path = cwd
		}
	}
	return args
}
