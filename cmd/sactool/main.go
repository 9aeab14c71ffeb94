package main

import "github.com/arloliu/sacio/cmd/sactool/cmd"

func main() {
	cmd.Execute()
}
