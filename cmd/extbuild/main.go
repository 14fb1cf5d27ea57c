package main

import "extbuild/internal/cli"

func main() {
	cli.Execute()
}
