package mapper

import (
	"testing"

	"task-manager-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestExtractLegacyBugFields(t *testing.T) {
	bug := &domain.BugReport{
		Description: "Login breaks on submit.\n" +
			"**Severity:** high\n" +
			"**Environment:** Firefox 130 on Linux\n" +
			"**Steps:**\n1. open login page\n2. submit empty form",
	}

	ExtractLegacyBugFields(bug)

	assert.Equal(t, domain.SeverityHigh, bug.Severity)
	assert.Equal(t, "Firefox 130 on Linux", bug.Environment)
	assert.Equal(t, "1. open login page\n2. submit empty form", bug.Steps)
	assert.Equal(t, "Login breaks on submit.", bug.Description)
}

func TestExtractLegacyBugFields_StructuredFieldsWin(t *testing.T) {
	bug := &domain.BugReport{
		Severity:    domain.SeverityCritical,
		Environment: "staging",
		Description: "Crash.\n**Severity:** low\n**Environment:** prod",
	}

	ExtractLegacyBugFields(bug)

	assert.Equal(t, domain.SeverityCritical, bug.Severity)
	assert.Equal(t, "staging", bug.Environment)
	assert.Equal(t, "Crash.", bug.Description, "markers are stripped either way")
}

func TestExtractLegacyBugFields_InvalidSeverityIgnored(t *testing.T) {
	bug := &domain.BugReport{
		Description: "Oops.\n**Severity:** catastrophic",
	}

	ExtractLegacyBugFields(bug)

	assert.Empty(t, bug.Severity)
	assert.Equal(t, "Oops.", bug.Description)
}

func TestExtractLegacyBugFields_BoldLineAfterStepsSurvives(t *testing.T) {
	bug := &domain.BugReport{
		Description: "Crash.\n" +
			"**Steps:**\n1. open page\n2. reload\n" +
			"**Note:** only reproduces on mobile",
	}

	ExtractLegacyBugFields(bug)

	assert.Equal(t, "1. open page\n2. reload", bug.Steps)
	assert.Equal(t, "Crash.\n**Note:** only reproduces on mobile", bug.Description)
}

func TestExtractLegacyBugFields_PlainDescriptionUntouched(t *testing.T) {
	bug := &domain.BugReport{Description: "Just a plain bug report."}

	ExtractLegacyBugFields(bug)

	assert.Equal(t, "Just a plain bug report.", bug.Description)
	assert.Empty(t, bug.Severity)
	assert.Empty(t, bug.Environment)
	assert.Empty(t, bug.Steps)
}
