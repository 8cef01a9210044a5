//go:build tinygo

package main

import (
	"disco/app"
	"disco/hal"
)

func main() {
	app.Run(hal.New())
}
