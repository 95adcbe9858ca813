package main

import "github.com/shdw-drive/shdw-cli/cmd"

func main() {
	cmd.Execute()
}
