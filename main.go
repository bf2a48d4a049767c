package main

import "github.com/sumwatshade/tidetable/cmd"

func main() {
	cmd.Execute()
}
