package cmd

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/cloudnative-incubator/vpc-aws/config"
	"github.com/cloudnative-incubator/vpc-aws/core/network"
	"github.com/cloudnative-incubator/vpc-aws/filegen"
	"github.com/cloudnative-incubator/vpc-aws/logger"
)

var (
	cmdRender = &cobra.Command{
		Use:          "render",
		Short:        "Render the CloudFormation network stack template",
		Long:         ``,
		RunE:         runCmdRender,
		SilenceUsage: true,
	}

	renderOpts = struct {
		output string
	}{}
)

func init() {
	RootCmd.AddCommand(cmdRender)
	cmdRender.Flags().StringVarP(&renderOpts.output, "output", "o", "stack.json", `Where to write the rendered stack template. Pass "-" for stdout`)
}

func runCmdRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.ConfigFromFile(configPath)
	if err != nil {
		return fmt.Errorf("Error parsing config: %v", err)
	}
	logger.Debugf("loaded network configuration: %s", spew.Sdump(cfg))

	stack, err := network.NewStack(cfg)
	if err != nil {
		return fmt.Errorf("Failed to initialize network stack: %v", err)
	}

	body, err := stack.RenderTemplateAsString()
	if err != nil {
		return fmt.Errorf("Error while rendering template: %v", err)
	}

	if renderOpts.output == "-" {
		fmt.Println(body)
		return nil
	}

	if err := filegen.Render(filegen.File(renderOpts.output, []byte(body), 0644)); err != nil {
		return fmt.Errorf("Error writing %s: %v", renderOpts.output, err)
	}

	logger.Infof("Rendered network stack template to %s", renderOpts.output)
	return nil
}
