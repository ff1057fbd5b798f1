package main

import "github.com/ruebensh/portfolio/cmd/portfolio-cli/cmd"

func main() {
	cmd.Execute()
}
