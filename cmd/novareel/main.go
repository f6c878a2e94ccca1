package main

import "github.com/jaehyun-dev/novareel/cmd/novareel/cli"

func main() {
	cli.Execute()
}
