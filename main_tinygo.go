//go:build tinygo

package main

import (
	"wattmeter/app"
	"wattmeter/hal"
)

func main() {
	app.Run(hal.New())
}
