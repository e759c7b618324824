package main

import "hstin/wxcmap/cmd"

func main() {
	cmd.Execute()
}
