package main

import "github.com/duke-cli/duke/cmd"

func main() {
	cmd.Execute()
}
