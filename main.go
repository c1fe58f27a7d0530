package main

import (
	"github.com/silky/music-score/cmd"
)

func main() {
	cmd.Execute()
}
