package main

import (
	"github.com/lwgboy/LibArtNet/cmd"
)

func main() {
	cmd.Execute()
}
