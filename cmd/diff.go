package cmd

import (
	"fmt"
	"io/ioutil"

	"github.com/spf13/cobra"

	"github.com/cloudnative-incubator/vpc-aws/cfnstack"
	"github.com/cloudnative-incubator/vpc-aws/config"
	"github.com/cloudnative-incubator/vpc-aws/core/network"
	"github.com/cloudnative-incubator/vpc-aws/logger"
)

var (
	cmdDiff = &cobra.Command{
		Use:          "diff RENDERED_STACK_TEMPLATE",
		Short:        "Compare a previously rendered stack template against the current configuration",
		Long:         ``,
		RunE:         runCmdDiff,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
	}

	diffOpts = struct {
		context int
	}{}
)

func init() {
	RootCmd.AddCommand(cmdDiff)
	cmdDiff.Flags().IntVarP(&diffOpts.context, "context", "C", 3, "Number of unchanged lines shown around each change. Pass a negative value for the full documents")
}

func runCmdDiff(cmd *cobra.Command, args []string) error {
	current, err := ioutil.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("Error reading %s: %v", args[0], err)
	}

	cfg, err := config.ConfigFromFile(configPath)
	if err != nil {
		return fmt.Errorf("Error parsing config: %v", err)
	}

	stack, err := network.NewStack(cfg)
	if err != nil {
		return fmt.Errorf("Failed to initialize network stack: %v", err)
	}

	desired, err := stack.RenderTemplateAsString()
	if err != nil {
		return fmt.Errorf("Error while rendering template: %v", err)
	}

	out, err := cfnstack.DiffJSON(string(current), desired, diffOpts.context)
	if err != nil {
		return fmt.Errorf("Error while diffing stack templates: %v", err)
	}

	if out == "" {
		logger.Info("No changes")
		return nil
	}

	fmt.Print(out)
	return nil
}
