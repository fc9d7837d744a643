package main

import "github.com/killallgit/beekit/cmd"

func main() {
	cmd.Execute()
}
