package main

import (
	"github.com/fduseless/fast-header/cmd/fasthdr/cmd"
)

func main() {
	cmd.Execute()
}
