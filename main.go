package main

import "github.com/weaponstats/wsdb/cmd"

func main() {
	cmd.Execute()
}
