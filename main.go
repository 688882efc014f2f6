package main

import "rwallet/cmd"

func main() {
	cmd.Execute()
}
