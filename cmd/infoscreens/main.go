package main

import (
	"context"

	"github.com/user-none/infoscreens/cli"
)

func main() {
	cli.Execute(context.Background())
}
