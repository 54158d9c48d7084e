package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cloudnative-incubator/vpc-aws/core/network"
	"github.com/cloudnative-incubator/vpc-aws/logger"
)

var (
	cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print version information and exit",
		Long:  ``,
		Run:   runCmdVersion,
	}
)

func init() {
	RootCmd.AddCommand(cmdVersion)
}

func runCmdVersion(_ *cobra.Command, _ []string) {
	logger.Infof("vpc-aws version %s\n", network.VERSION)
}
