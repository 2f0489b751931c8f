package main

import "designkb/internal/cli"

func main() {
	cli.Execute()
}
