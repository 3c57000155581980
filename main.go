package main

import "github.com/thirdweb-dev/blocklinks/cmd"

func main() {
	cmd.Execute()
}
