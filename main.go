package main

import (
	"github.com/shouni/go-word-fetch/cmd"
)

func main() {
	cmd.Execute()
}
