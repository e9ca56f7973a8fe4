// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package runmoncli

import (
	"fmt"

	"github.com/BrunoReboul/runmon/utilities/solution"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCommand returns the runmoncli command tree
func NewRootCommand() *cobra.Command {
	var s settings
	root := &cobra.Command{
		Use:           "runmoncli",
		Short:         "Cloud Run log based indicators and alert policies",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level, err := zerolog.ParseLevel(s.LogLevel)
			if err != nil {
				return fmt.Errorf("runmoncli invalid --log-level %v", err)
			}
			zerolog.SetGlobalLevel(level)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&s.RepositoryPath, "repo", ".", "runmon repository path")
	root.PersistentFlags().StringVar(&s.EnvironmentName, "environment", solution.DevelopmentEnvironmentName, "environment name, selects the hosting project")
	root.PersistentFlags().StringVar(&s.InstanceName, "instance", "", "limit the command to one instance, default all")
	root.PersistentFlags().StringVar(&s.LogLevel, "log-level", zerolog.InfoLevel.String(), "trace, debug, info, warn or error")

	root.AddCommand(newValidateCommand(&s))
	root.AddCommand(newPlanCommand(&s))
	root.AddCommand(newDeployCommand(&s))
	root.AddCommand(newInitCommand(&s))
	return root
}

func newValidateCommand(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the instances configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return validate(cmd.Context(), s)
		},
	}
}

func newPlanCommand(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Validate and expand the instances into log based metrics and alert policies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return plan(cmd.Context(), s)
		},
	}
	cmd.Flags().BoolVar(&s.Commands.Dump, "dump", false, "write the specifications to instances/<instance>/specs.yaml")
	return cmd
}

func newDeployCommand(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Apply the instances log based metrics and alert policies in the hosting project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return deployInstances(cmd.Context(), s)
		},
	}
	cmd.Flags().BoolVar(&s.Commands.Check, "check", false, "report missing or different resources instead of applying")
	cmd.Flags().BoolVar(&s.Commands.Dump, "dump", false, "write the specifications to instances/<instance>/specs.yaml")
	return cmd
}

func newInitCommand(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Enable the APIs runmon needs in the hosting project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initialize(cmd.Context(), s)
		},
	}
	cmd.Flags().BoolVar(&s.Commands.Check, "check", false, "report inactive APIs instead of enabling them")
	return cmd
}
