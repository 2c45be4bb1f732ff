package main

import "github.com/rahmanda/kalk/cmd/kalk/cmd"

func main() {
	cmd.Execute()
}
