package main

import "github.com/oxlang/oxlang/cmd"

func main() {
	cmd.Execute()
}
