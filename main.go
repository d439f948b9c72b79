package main

import "github.com/AnyUserName/imgconv-cli/cmd"

func main() {
	cmd.Main()
}
