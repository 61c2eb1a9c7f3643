package main

import "github.com/farisv/iconmill/internal/cmd"

func main() {
	cmd.Execute()
}
