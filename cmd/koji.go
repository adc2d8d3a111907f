package cmd

import (
	"releng-sop/core/audit"
	"releng-sop/feature/koji"

	"github.com/spf13/cobra"
)

var kojiFlags workflowFlags

// kojiCloneTagCmd clones the compose tag of a release into a milestone tag.
var kojiCloneTagCmd = &cobra.Command{
	Use:   "koji-clone-tag-for-release-milestone RELEASE_ID MILESTONE",
	Short: "Clone the package set of a release into a milestone tag",
	Long: `Clone the compose tag of a release into its milestone tag.

The milestone tag is the release tag, the lowercased milestone name and major
version, and a "-set" suffix, for example f24-beta-1-set for Beta-1.0.

Examples:
  # Show what would be cloned (koji runs with --test)
  releng-sop koji-clone-tag-for-release-milestone fedora-24 Beta-1.0

  # Clone
  releng-sop koji-clone-tag-for-release-milestone fedora-24 Beta-1.0 --commit`,
	Args: cobra.ExactArgs(2),
	RunE: runKojiCloneTag,
}

func init() {
	kojiFlags.register(kojiCloneTagCmd)
	RootCmd.AddCommand(kojiCloneTagCmd)
}

func runKojiCloneTag(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	releaseID, milestone := args[0], args[1]

	if err := koji.VerifyMilestone(milestone); err != nil {
		return err
	}

	rt, err := bootstrap(ctx, audit.WorkflowCloneTag, kojiFlags, releaseID)
	if err != nil {
		return err
	}

	return rt.finish(ctx, func() error {
		release, err := rt.documents.Release(releaseID)
		if err != nil {
			return err
		}

		svc, err := koji.NewService(rt.env, release, milestone, rt.logger)
		if err != nil {
			return err
		}
		rt.run.Commands = []string{svc.Command(kojiFlags.commit).String()}

		out := cmd.OutOrStdout()
		if err := svc.Run(ctx, rt.runner(out, cmd.ErrOrStderr()), out, kojiFlags.commit); err != nil {
			return err
		}
		rt.run.Completed = 1
		return nil
	}())
}
