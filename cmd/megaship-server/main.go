package main

import "github.com/findcptn/megaship-tracker/cmd/megaship-server/cmd"

func main() {
	cmd.Execute()
}
