package main

import (
	"github.com/cloudnative-incubator/vpc-aws/cmd"
	"os"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}
