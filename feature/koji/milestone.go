package koji

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidMilestone is returned for labels that are not <Name>-<X>.<Y>.
var ErrInvalidMilestone = errors.New("invalid milestone")

// MilestoneNames are the label names a release milestone may carry.
var MilestoneNames = []string{
	"EA",
	"DevelPhaseExit",
	"InternalAlpha",
	"Alpha",
	"InternalSnapshot",
	"Beta",
	"Snapshot",
	"RC",
	"Update",
	"SecurityFix",
}

var milestonePattern = regexp.MustCompile(`^([^-]+)-(\d+\.\d+)$`)

// VerifyMilestone checks that label looks like "Beta-1.0".
func VerifyMilestone(label string) error {
	match := milestonePattern.FindStringSubmatch(label)
	if match == nil {
		return fmt.Errorf("%w: %q, expected <name>-<major>.<minor>", ErrInvalidMilestone, label)
	}

	for _, name := range MilestoneNames {
		if match[1] == name {
			return nil
		}
	}
	return fmt.Errorf("%w: %q, unknown name %q (allowed: %s)",
		ErrInvalidMilestone, label, match[1], strings.Join(MilestoneNames, ", "))
}

// MilestoneTag derives the koji tag a milestone's package set is cloned into:
// the release tag, the lowercased milestone up to the first dot and "-set".
//
//	MilestoneTag("f24", "Beta-1.0") == "f24-beta-1-set"
func MilestoneTag(releaseTag, milestone string) string {
	major, _, _ := strings.Cut(strings.ToLower(milestone), ".")
	return fmt.Sprintf("%s-%s-set", releaseTag, major)
}
