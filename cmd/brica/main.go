package main

import "github.com/akawashiro/BriCA1/cmd/brica/cmd"

func main() {
	cmd.Execute()
}
