package main

import "github.com/vgskye/craftdeck/cmd"

func main() {
	cmd.Execute()
}
