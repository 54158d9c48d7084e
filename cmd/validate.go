package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudnative-incubator/vpc-aws/config"
)

var (
	cmdValidate = &cobra.Command{
		Use:          "validate",
		Short:        "Validate the network configuration",
		Long:         ``,
		RunE:         runCmdValidate,
		SilenceUsage: true,
	}
)

func init() {
	RootCmd.AddCommand(cmdValidate)
}

func runCmdValidate(cmd *cobra.Command, args []string) error {
	if _, err := config.ConfigFromFile(configPath); err != nil {
		return fmt.Errorf("Error parsing config: %v", err)
	}

	fmt.Println("Validation OK!")
	return nil
}
