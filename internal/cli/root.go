package cli

import (
	"github.com/spf13/cobra"
)

// NewRevlabCommand builds the revlab command tree.
func NewRevlabCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revlab [flags] [options]",
		Short: "revlab estimates venue revenue and compares saved scenarios.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
	cmd.AddCommand(NewCmdShow())
	cmd.AddCommand(NewCmdSet())
	cmd.AddCommand(NewCmdReset())
	cmd.AddCommand(NewCmdSave())
	cmd.AddCommand(NewCmdList())
	cmd.AddCommand(NewCmdLoad())
	cmd.AddCommand(NewCmdDelete())
	cmd.AddCommand(NewCmdCompare())
	cmd.AddCommand(NewCmdProject())
	cmd.AddCommand(NewCmdFoodBundle())
	cmd.AddCommand(NewCmdKPI())
	cmd.AddCommand(NewCmdReport())
	cmd.AddCommand(NewCmdExport())
	cmd.AddCommand(NewCmdImport())
	cmd.AddCommand(NewCmdPurge())

	return cmd
}
