package main

import "github.com/inovacc/feedr/cmd"

func main() {
	cmd.Execute()
}
