package main

import "titkee.com/techradar/cmd"

func main() {
	cmd.Execute()
}
