//go:build tinygo

package main

import (
	"vgacube/app"
	"vgacube/hal"
)

func main() {
	app.Run(hal.New())
}

