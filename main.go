package main

import "github.com/iksnae/chatbox/cmd"

func main() {
	cmd.Execute()
}
