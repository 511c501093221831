package main

import "branchout/cmd"

func main() {
	cmd.Execute()
}
