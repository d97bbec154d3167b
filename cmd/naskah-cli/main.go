package main

import "naskah/cmd/naskah-cli/cmd"

func main() {
	cmd.Execute()
}
