package main

import "github.com/halewijn/edo31/cmd"

func main() {
	cmd.Execute()
}
