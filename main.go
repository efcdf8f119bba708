package main

import "github.com/coralsci/isoshell/cmd"

func main() {
	cmd.Execute()
}
