package main

import "github.com/DrSkyle/qstr/cmd/qstr/commands"

func main() {
	commands.Execute()
}
