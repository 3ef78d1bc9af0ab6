package main

import "github.com/amirkhaki/gruvcrisp/cmd/gruvcrisp/cmd"

func main() {
	cmd.Execute()
}
