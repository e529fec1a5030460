package main

import "github.com/rvtools/rvinsn/cmd"

func main() {
	cmd.Execute()
}
