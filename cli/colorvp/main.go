package main

import (
	"os"

	colorvpcmder "github.com/viant/colorvp/cmd/colorvp"
)

func main() {
	cmd := colorvpcmder.NewColorvpCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
