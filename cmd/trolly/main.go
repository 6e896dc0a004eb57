package main

import "github.com/captainfanatic/trolly/internal/adapters/driving/cli"

func main() {
	cli.Execute()
}
