package main

import "github.com/georgemunganga/printa-pos/cmd/api/commands"

func main() {
	commands.Execute()
}
