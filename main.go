package main

import "github.com/grouphub/user-group-services/cmd"

func main() {
	cmd.Execute()
}
