package mapper

import (
	"regexp"
	"strings"

	"task-manager-service/internal/domain"
)

// Older clients encoded bug metadata as markdown inside the free-text
// description instead of structured fields. That format is parsed here, at
// the ingestion boundary, and never reaches the core model.
var (
	legacySeverityRe    = regexp.MustCompile(`(?mi)^\*\*Severity:\*\*\s*(\w+)\s*$`)
	legacyEnvironmentRe = regexp.MustCompile(`(?mi)^\*\*Environment:\*\*\s*(.+?)\s*$`)
	// The closing delimiter is captured so stripping can put it back: the
	// steps block ends where the next bold line begins, and that line must
	// survive the replacement intact. The match also swallows the newline
	// before the marker so the restored delimiter does not double it.
	legacyStepsRe = regexp.MustCompile(`(?ms)\n?^\*\*Steps:\*\*\s*\n(.*?)(\n\*\*|\z)`)
)

// ExtractLegacyBugFields pulls severity/environment/steps markers out of a
// markdown description. Structured fields already present win; the legacy
// values only fill gaps. The returned description has the parsed markers
// stripped.
func ExtractLegacyBugFields(bug *domain.BugReport) {
	desc := bug.Description

	if bug.Severity == "" {
		if m := legacySeverityRe.FindStringSubmatch(desc); m != nil {
			sev := domain.BugSeverity(strings.ToUpper(m[1]))
			if sev.Valid() {
				bug.Severity = sev
			}
		}
	}

	if bug.Environment == "" {
		if m := legacyEnvironmentRe.FindStringSubmatch(desc); m != nil {
			bug.Environment = m[1]
		}
	}

	if bug.Steps == "" {
		if m := legacyStepsRe.FindStringSubmatch(desc); m != nil {
			bug.Steps = strings.TrimSpace(m[1])
		}
	}

	desc = legacySeverityRe.ReplaceAllString(desc, "")
	desc = legacyEnvironmentRe.ReplaceAllString(desc, "")
	desc = legacyStepsRe.ReplaceAllString(desc, "${2}")
	bug.Description = strings.TrimSpace(desc)
}
