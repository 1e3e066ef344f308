package main

import (
	"github.com/go-pixfit/pixfit/cmd"
)

func main() {
	cmd.Main()
}
