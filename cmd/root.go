package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cloudnative-incubator/vpc-aws/logger"
)

var (
	RootCmd = &cobra.Command{
		Use:   "vpc-aws",
		Short: "Compile declarative VPC network topologies into CloudFormation stack templates",
		Long:  ``,
	}

	configPath = "network.yaml"
)

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", configPath, "Location of the network configuration file")
	RootCmd.PersistentFlags().BoolVar(&logger.Silent, "silent", false, "Do not output any information")
	RootCmd.PersistentFlags().BoolVar(&logger.Verbose, "verbose", false, "Output debug information")
	RootCmd.PersistentFlags().BoolVar(&logger.Color, "color", false, "Use colorized output")
}
