package main

import "github.com/ShubhamAnand123/onlawthink/internal/cli"

func main() {
	cli.Execute()
}
