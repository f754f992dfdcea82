package main

import "github.com/wangzhennan14/redmask/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
