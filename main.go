package main

import "github.com/mfortes/ponto/cmd"

func main() {
	cmd.Execute()
}
