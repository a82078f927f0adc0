package main

import "github.com/ault-network/ault-go/cmd"

func main() {
	cmd.Execute()
}
