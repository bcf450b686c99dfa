package main

import "github.com/mzimandl/cnc-tskit/internal/cmd"

func main() {
	cmd.Execute()
}
