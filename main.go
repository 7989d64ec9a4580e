package main

import "github.com/xstraven/brasscoach/cmd"

func main() {
	cmd.Execute()
}
