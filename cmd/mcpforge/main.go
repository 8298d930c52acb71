package main

import "github.com/mcpforge/mcpforge/internal/cli"

func main() {
	cli.Execute()
}
