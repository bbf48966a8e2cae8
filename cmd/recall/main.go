package main

import "recall/cmd/recall/cmd"

func main() {
	cmd.Execute()
}
