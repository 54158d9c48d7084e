package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cloudnative-incubator/vpc-aws/builtin"
	"github.com/cloudnative-incubator/vpc-aws/config"
	"github.com/cloudnative-incubator/vpc-aws/filegen"
)

var (
	cmdInit = &cobra.Command{
		Use:          "init",
		Short:        "Initialize a default network configuration",
		Long:         ``,
		RunE:         runCmdInit,
		SilenceUsage: true,
	}

	initOpts = config.InitialConfig{}
)

func init() {
	RootCmd.AddCommand(cmdInit)
	cmdInit.Flags().StringVar(&initOpts.VPCName, "vpc-name", "", "The name of the network stack. Defaults to <project>-<environment>")
	cmdInit.Flags().StringVar(&initOpts.VPCCIDR, "vpc-cidr", "", "The address block of the VPC")
	cmdInit.Flags().StringSliceVar(&initOpts.AvailabilityZones, "availability-zones", nil, "The availability zones to create one public and one private subnet in")
	cmdInit.Flags().StringSliceVar(&initOpts.PublicSubnetCIDRs, "public-subnet-cidrs", nil, "One public subnet CIDR block per availability zone")
	cmdInit.Flags().StringSliceVar(&initOpts.PrivateSubnetCIDRs, "private-subnet-cidrs", nil, "One private subnet CIDR block per availability zone")
	cmdInit.Flags().StringVar(&initOpts.Environment, "environment", "", "The environment label applied to every resource")
	cmdInit.Flags().StringVar(&initOpts.Project, "project", "", "The project label applied to every resource")
}

func runCmdInit(cmd *cobra.Command, args []string) error {
	if err := validateRequired(
		flag{"--vpc-cidr", initOpts.VPCCIDR},
		flag{"--availability-zones", strings.Join(initOpts.AvailabilityZones, ",")},
		flag{"--public-subnet-cidrs", strings.Join(initOpts.PublicSubnetCIDRs, ",")},
		flag{"--private-subnet-cidrs", strings.Join(initOpts.PrivateSubnetCIDRs, ",")},
		flag{"--environment", initOpts.Environment},
		flag{"--project", initOpts.Project},
	); err != nil {
		return err
	}

	if err := filegen.CreateFileFromTemplate(configPath, initOpts, []byte(builtin.String(builtin.DefaultNetworkConfigTmplFile))); err != nil {
		return fmt.Errorf("Error exec-ing default config template: %v", err)
	}

	successMsg :=
		`Success! Created %s

Next steps:
1. (Optional) Edit %s to parameterize the network.
2. Use the "vpc-aws render" command to render the CloudFormation stack template.
`

	fmt.Printf(successMsg, configPath, configPath)
	return nil
}
