package main

import "github.com/RyanBlaney/signal-plotter/cmd"

func main() {
	cmd.Execute()
}
