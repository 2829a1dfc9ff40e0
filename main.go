package main

import "github.com/alduin/alduin/cmd"

func main() {
	cmd.Execute()
}
