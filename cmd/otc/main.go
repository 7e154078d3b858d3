package main

import (
	"github.com/OpenTraceLab/OpenTraceCoil/cmd/otc/cmd"
)

func main() {
	cmd.Execute()
}
