package main

import "github.com/tpsify/tpsify/cmd"

func main() {
	cmd.Execute()
}
