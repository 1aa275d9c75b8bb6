package main

import "github.com/emoryluqian/LumosX-Generator/cmd"

func main() {
	cmd.Execute()
}
