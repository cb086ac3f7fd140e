package main

import "goalboard/cmd/gb/root"

func main() {
	root.Execute()
}
