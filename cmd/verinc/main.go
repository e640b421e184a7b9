package main

import "github.com/oshokin/verinc/cmd/verinc/cmd"

func main() {
	cmd.Execute()
}
