package main

import (
	"github.com/elanicia/storefront/cmd"
)

func main() {
	cmd.Start()
}
