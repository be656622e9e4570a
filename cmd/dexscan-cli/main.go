package main

import "dexscan/cmd/dexscan-cli/cmd"

func main() {
	cmd.Execute()
}
