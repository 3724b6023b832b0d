package main

import "vexc/cmd"

func main() {
	cmd.Execute()
}
