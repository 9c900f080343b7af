package main

import "drh-client/cmd/drh/commands"

func main() {
	commands.Execute()
}
