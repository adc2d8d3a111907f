package main

import "releng-sop/cmd"

func main() {
	cmd.Execute()
}
