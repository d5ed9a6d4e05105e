package main

import "github.com/JakobSachs/jlisp/cmd"

func main() {
	cmd.Execute()
}
