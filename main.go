package main

import "github.com/philipparndt/rdclock/cmd"

func main() {
	cmd.Execute()
}
