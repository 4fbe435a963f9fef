package main

import "github.com/myrt-theme/myrt/internal/cli"

func main() {
	cli.Execute()
}
