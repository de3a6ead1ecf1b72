package main

import "github.com/findcptn/megaship-tracker/cmd/megaship-watch/cmd"

func main() {
	cmd.Execute()
}
