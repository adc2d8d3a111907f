package koji

import (
	"context"
	"fmt"
	"io"
	"strings"

	"releng-sop/core/command"
	"releng-sop/core/document"
	"releng-sop/core/executor"

	"go.uber.org/zap"
)

// Service clones the compose tag of a release into a milestone tag.
type Service struct {
	env          *document.Environment
	release      *document.Release
	milestone    string
	milestoneTag string
	logger       *zap.Logger
}

// NewService validates milestone and prepares the clone for release.
func NewService(env *document.Environment, release *document.Release, milestone string, logger *zap.Logger) (*Service, error) {
	if err := VerifyMilestone(milestone); err != nil {
		return nil, err
	}

	return &Service{
		env:          env,
		release:      release,
		milestone:    milestone,
		milestoneTag: MilestoneTag(release.ReleaseTag, milestone),
		logger:       logger,
	}, nil
}

// MilestoneTag returns the target tag.
func (s *Service) MilestoneTag() string {
	return s.milestoneTag
}

// Details renders what the clone is going to do.
func (s *Service) Details(commit bool) string {
	var b strings.Builder
	b.WriteString("Cloning package set for a release milestone\n")
	fmt.Fprintf(&b, " * koji profile:            %s\n", s.env.KojiProfile)
	fmt.Fprintf(&b, " * release_id:              %s\n", s.release.ID)
	fmt.Fprintf(&b, " * milestone:               %s\n", s.milestone)
	fmt.Fprintf(&b, " * compose tag (source):    %s\n", s.release.ComposeTag)
	fmt.Fprintf(&b, " * milestone tag (target):  %s\n", s.milestoneTag)
	if !commit {
		b.WriteString("*** TEST MODE ***\n")
	}
	return b.String()
}

// Command returns the koji invocation.
func (s *Service) Command(commit bool) command.Invocation {
	return command.CloneTag(s.env.KojiProfile, s.release.ComposeTag, s.milestoneTag, commit)
}

// Run prints the details and the command, then runs it.
// A dry run still executes koji, which is harmless with --test.
func (s *Service) Run(ctx context.Context, runner *executor.Runner, out io.Writer, commit bool) error {
	fmt.Fprint(out, s.Details(commit))

	s.logger.Info("Cloning tag",
		zap.String("source", s.release.ComposeTag),
		zap.String("target", s.milestoneTag),
		zap.Bool("commit", commit),
	)

	if err := runner.Run(ctx, s.Command(commit), true); err != nil {
		return fmt.Errorf("failed to clone tag %s: %w", s.release.ComposeTag, err)
	}
	return nil
}
