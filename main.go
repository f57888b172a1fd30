package main

import "github.com/richimp95/Project-Sparkify-AWS/cmd"

func main() {
	cmd.Execute()
}
