package main

import "fmt"

// version is set at build time:
//
//	go build -ldflags "-X main.version=1.2.0" ./cli/swatch
var version = "dev"

type CmdVersion struct{}

func (CmdVersion) Execute(args []string) error {
	fmt.Printf("%s version %s\n", bin, version)
	return nil
}
