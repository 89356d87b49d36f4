package main

import (
	"os"

	"sdcalc/cli"
)

func main() {
	cli.Main(os.Args)
}
