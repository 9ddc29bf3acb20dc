package main

import (
	"github.com/gamestack/admin/internal/cli"
)

func main() {
	cli.Execute()
}
