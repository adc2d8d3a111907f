package cmd

import (
	"fmt"

	"releng-sop/core/audit"
	"releng-sop/core/catalog"
	"releng-sop/core/command"
	"releng-sop/core/credential"
	"releng-sop/core/document"
	"releng-sop/feature/pulp"

	"github.com/spf13/cobra"
)

var (
	clearFlags pulpFlags
	cloneFlags struct {
		pulpFlags
		contentCategory string
		skipRepoCheck   bool
	}

	// prompter asks for the Pulp password; tests replace it.
	prompter credential.Prompter = credential.NewTerminalPrompter()
)

// pulpClearReposCmd removes every RPM from the repositories of a release.
var pulpClearReposCmd = &cobra.Command{
	Use:   "pulp-clear-repos RELEASE_ID REPO_FAMILY",
	Short: "Remove all RPMs from the Pulp repositories of a release",
	Long: `Remove all RPMs from the Pulp repositories of a release.

Repositories are looked up in PDC by release, repo family and the optional
--arch and --variant filters. The "dist" repo family is never cleared.

Examples:
  # List the repositories and commands
  releng-sop pulp-clear-repos fedora-24 beta --arch x86_64

  # Clear them
  releng-sop pulp-clear-repos fedora-24 beta --arch x86_64 --commit`,
	Args: cobra.ExactArgs(2),
	RunE: runPulpClearRepos,
}

// pulpCloneReposCmd clones repository content from one release to another.
var pulpCloneReposCmd = &cobra.Command{
	Use:   "pulp-clone-repos FROM_RELEASE_ID TO_RELEASE_ID REPO_FAMILY",
	Short: "Clone Pulp repositories of one release into another",
	Long: `Clone Pulp repositories of one release into another.

Repositories of both releases are paired by arch, variant and content category.
Pairs that already share a name are skipped, as are repositories without a
counterpart. Both releases must have the same number of repositories unless
--skip-repo-check is given.

Examples:
  # Show the pairs and echo the commands
  releng-sop pulp-clone-repos fedora-24 fedora-24-updates beta

  # Clone binary repositories only
  releng-sop pulp-clone-repos fedora-24 fedora-24-updates beta --content-category binary --commit`,
	Args: cobra.ExactArgs(3),
	RunE: runPulpCloneRepos,
}

func init() {
	clearFlags.register(pulpClearReposCmd)

	cloneFlags.register(pulpCloneReposCmd)
	pulpCloneReposCmd.Flags().StringVar(&cloneFlags.contentCategory, "content-category", "", "Content category in PDC (binary, debug, source).")
	pulpCloneReposCmd.Flags().BoolVar(&cloneFlags.skipRepoCheck, "skip-repo-check", false,
		"Skip checking that every source repo maps to a destination repo. Unmapped repos are listed as skipped.")

	RootCmd.AddCommand(pulpClearReposCmd)
	RootCmd.AddCommand(pulpCloneReposCmd)
}

func runPulpClearRepos(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	releaseID, family := args[0], args[1]

	rt, err := bootstrap(ctx, audit.WorkflowClearRepos, clearFlags.workflowFlags, releaseID)
	if err != nil {
		return err
	}
	rt.run.RepoFamily = family

	return rt.finish(ctx, func() error {
		release, err := rt.documents.Release(releaseID)
		if err != nil {
			return err
		}
		pulpCfg, err := rt.documents.PulpAdmin(rt.env.PulpServer)
		if err != nil {
			return err
		}

		clearer := pulp.NewClearer(rt.env, pulpCfg, catalog.NewClient(rt.env.PDCServer, rt.cfg.Catalog), rt.logger)
		plan, err := clearer.Plan(ctx, pulp.ClearRequest{
			Release:    release,
			RepoFamily: family,
			Arches:     clearFlags.arches,
			Variants:   clearFlags.variants,
		})
		if err != nil {
			return err
		}

		password, err := resolvePassword(pulpCfg, clearFlags)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, plan.Details(clearFlags.commit))
		rt.run.Commands = printable(plan.Commands("", clearFlags.commit))

		done, err := clearer.Run(ctx, plan, rt.runner(out, cmd.ErrOrStderr()), password, clearFlags.commit)
		rt.run.Completed = done
		return err
	}())
}

func runPulpCloneRepos(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	fromID, toID, family := args[0], args[1], args[2]

	rt, err := bootstrap(ctx, audit.WorkflowCloneRepos, cloneFlags.workflowFlags, fromID, toID)
	if err != nil {
		return err
	}
	rt.run.RepoFamily = family

	return rt.finish(ctx, func() error {
		from, err := rt.documents.Release(fromID)
		if err != nil {
			return err
		}
		to, err := rt.documents.Release(toID)
		if err != nil {
			return err
		}
		pulpCfg, err := rt.documents.PulpAdmin(rt.env.PulpServer)
		if err != nil {
			return err
		}

		cloner := pulp.NewCloner(rt.env, pulpCfg, catalog.NewClient(rt.env.PDCServer, rt.cfg.Catalog), rt.logger)
		plan, err := cloner.Plan(ctx, pulp.CloneRequest{
			From:            from,
			To:              to,
			RepoFamily:      family,
			Arches:          cloneFlags.arches,
			Variants:        cloneFlags.variants,
			ContentCategory: cloneFlags.contentCategory,
			SkipRepoCheck:   cloneFlags.skipRepoCheck,
		})
		if err != nil {
			return err
		}
		summary := plan.Result.Summary()
		rt.run.Summary = &summary

		password, err := resolvePassword(pulpCfg, cloneFlags.pulpFlags)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, plan.Details(cloneFlags.commit))
		rt.run.Commands = printable(plan.Commands("", cloneFlags.commit))

		done, err := cloner.Run(ctx, plan, rt.runner(out, cmd.ErrOrStderr()), out, password, cloneFlags.commit)
		rt.run.Completed = done
		return err
	}())
}

func resolvePassword(cfg *document.PulpAdmin, flags pulpFlags) (string, error) {
	return credential.Resolve(prompter, credential.Request{
		User:   cfg.User,
		Server: cfg.Name,
		Preset: cfg.Password,
		Commit: flags.commit,
		Force:  flags.forcePassword,
	})
}

func printable(invocations []command.Invocation) []string {
	lines := make([]string, 0, len(invocations))
	for _, inv := range invocations {
		lines = append(lines, inv.String())
	}
	return lines
}
