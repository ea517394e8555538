package main

import "github.com/papapumpkin/seismo/cmd"

func main() {
	cmd.Execute()
}
