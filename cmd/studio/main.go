package main

import "catwallpaper/cmd/studio/commands"

func main() {
	commands.Execute()
}
