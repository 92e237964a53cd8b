package main

import (
	"os"

	"github.com/spec-kit/notice-board/cmd/noticectl/cli"
)

var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
