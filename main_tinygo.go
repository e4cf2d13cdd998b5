//go:build tinygo

package main

import (
	"fxray/app"
	"fxray/hal"
)

func main() {
	app.Run(hal.New())
}
