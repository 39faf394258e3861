package main

import (
	"fmt"
	"os"

	"github.com/sat1226/minase/src"
)

func main() {
	args := minase.ParseArgs(os.Args[1:])
	if err := minase.Run(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
