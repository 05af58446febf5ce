package main

import "github.com/notesweep/notesweep/cmd"

func main() {
	cmd.Execute()
}
