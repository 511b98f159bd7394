package main

import "riskcalc/cmd"

func main() {
	cmd.Execute()
}
