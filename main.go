package main

import "github.com/yeisme/fsummary/cmd"

func main() {
	cmd.Execute()
}
