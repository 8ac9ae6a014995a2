package main

import "github.com/ealmiron/gowind/cmd"

func main() {
	cmd.Execute()
}
