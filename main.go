package main

import (
	"github.com/mugabe/bmsdex/cmd"
)

func main() {
	cmd.Execute()
}
