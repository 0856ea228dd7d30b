package main

import "github.com/coreman2200/ledmapper/cmd/ledmapper/cmd"

func main() {
	cmd.Execute()
}
