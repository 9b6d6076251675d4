package main

import "github.com/agentic-research/acfkit/cmd"

func main() {
	cmd.Execute()
}
