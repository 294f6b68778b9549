package main

import "dsk2woz2/cmd"

func main() {
	cmd.Execute()
}
