package cmd

import "github.com/spf13/cobra"

// workflowFlags are shared by every workflow command.
type workflowFlags struct {
	commit bool
	env    string
}

func (f *workflowFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.commit, "commit", false, "Program performs a dry-run by default. Enable this option to apply the changes.")
	cmd.Flags().StringVar(&f.env, "env", "default", "Select environment in which the program will make changes.")
}

// pulpFlags are shared by the pulp workflows.
type pulpFlags struct {
	workflowFlags
	variants      []string
	arches        []string
	forcePassword bool
}

func (f *pulpFlags) register(cmd *cobra.Command) {
	f.workflowFlags.register(cmd)
	cmd.Flags().StringArrayVar(&f.variants, "variant", nil, "Variant in PDC. Repeat to select several.")
	cmd.Flags().StringArrayVar(&f.arches, "arch", nil, "Arch in PDC. Repeat to select several.")
	cmd.Flags().BoolVar(&f.forcePassword, "force-password", false, "Always prompt for the Pulp password, even if it is stored in the pulp-admin config.")
}
