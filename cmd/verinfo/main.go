package main

import (
	"github.com/jzelinskie/verinfo/pkg/commands"
)

func main() {
	commands.Execute()
}
