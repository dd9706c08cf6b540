package main

import "github.com/tfcraft/assetgen/cmd"

func main() {
	cmd.Execute()
}
