package recommend

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/types"
)

// summarize selects a human-readable summary message from the match status
// and issue counts.
func summarize(set types.RecommendationSet) string {
	total := len(set.Recommendations)
	switch set.Status {
	case types.StatusExcellent:
		if total == 0 {
			return "Excellent match. Your resume aligns closely with this role and no significant gaps were detected."
		}
		return fmt.Sprintf("Excellent match. Your resume aligns closely with this role; %d minor improvement(s) could strengthen it further.", total)
	case types.StatusStrong:
		if set.CriticalCount > 0 {
			return fmt.Sprintf("Strong match overall, but %d critical gap(s) stand out. Addressing them would move you into the top tier.", set.CriticalCount)
		}
		return fmt.Sprintf("Strong match with minor improvements available. Review the %d suggestion(s) below.", total)
	case types.StatusModerate:
		return fmt.Sprintf("Moderate match. %d critical and %d high-priority gap(s) are holding the score back; start with those.", set.CriticalCount, set.HighPriorityCount)
	default:
		return fmt.Sprintf("Low match with significant gaps. %d recommendation(s) identify where the resume falls short of this role's requirements.", total)
	}
}
