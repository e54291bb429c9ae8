package main

import (
	"github.com/rustyeddy/dukas/internal/cli"
)

func main() {
	cli.Execute()
}
