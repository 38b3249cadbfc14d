package main

import "github.com/chrisdamba/foodataseed/cmd"

func main() {
	cmd.Execute()
}
