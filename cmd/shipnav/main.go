package main

import "github.com/orbitalworks/shipnav/internal/adapters/cli"

func main() {
	cli.Execute()
}
