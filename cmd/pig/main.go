package main

import "github.com/mcoot/pig/internal/cli"

func main() {
	cli.Execute()
}
