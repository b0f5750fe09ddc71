package main

import "raspctl/cmd"

func main() {
	cmd.Execute()
}
