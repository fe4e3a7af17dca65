package main

import "github.com/khanhnv2901/scorecheck/cmd"

var execCmd = cmd.Execute

func main() {
	execCmd()
}
