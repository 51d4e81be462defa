package main

import (
	"github.com/gmossy/AI-Enabled-blink-camera-app/internal/cli"
)

func main() {
	cli.Execute()
}
