//go:build cucumber

package cucumber

import (
	"fmt"
	"strings"
)

func (s *featureState) theCommandSucceeds() error {
	if s.exitCode != 0 {
		return fmt.Errorf("expected success, got exit %d: %s", s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theCommandFails() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected failure, got exit 0: %s", s.stdout.String())
	}
	return nil
}

func (s *featureState) theOutputContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected stdout to contain %q, got %q", text, s.stdout.String())
	}
	return nil
}

func (s *featureState) theErrorOutputContains(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected stderr to contain %q, got %q", text, s.stderr.String())
	}
	return nil
}

func (s *featureState) theRunReportsCounts(matched, missed, hallucinated int) error {
	if !s.hasResults {
		return fmt.Errorf("no scoring run in this scenario")
	}
	report := s.results.Report
	if report.MatchedCount != matched || report.UnmatchedGTCount != missed || report.UnmatchedGenCount != hallucinated {
		return fmt.Errorf("expected %d/%d/%d, got matched=%d missed=%d hallucinated=%d",
			matched, missed, hallucinated,
			report.MatchedCount, report.UnmatchedGTCount, report.UnmatchedGenCount)
	}
	return nil
}

func (s *featureState) theColumnAccuracyIs(key string, pct string) error {
	if !s.hasResults {
		return fmt.Errorf("no scoring run in this scenario")
	}
	for _, column := range s.results.Report.PerColumn {
		if column.Key != key {
			continue
		}
		got := fmt.Sprintf("%.1f", column.AccuracyPct)
		if got != pct {
			return fmt.Errorf("expected %s accuracy %s%%, got %s%%", key, pct, got)
		}
		return nil
	}
	return fmt.Errorf("column %q not found in report", key)
}

func (s *featureState) everyErrorRowHasMatchType(matchType string) error {
	if !s.hasResults {
		return fmt.Errorf("no scoring run in this scenario")
	}
	if len(s.results.Errors) == 0 {
		return fmt.Errorf("expected at least one error row")
	}
	for _, row := range s.results.Errors {
		if row.MatchType != matchType {
			return fmt.Errorf("expected match type %q, got %q", matchType, row.MatchType)
		}
	}
	return nil
}

func (s *featureState) theDuplicateKeyReportCounts(key string, count int) error {
	if !s.hasResults {
		return fmt.Errorf("no scoring run in this scenario")
	}
	got := s.results.DuplicateKeys.GroundTruth[key]
	if got != count {
		return fmt.Errorf("expected %q counted %d times, got %d", key, count, got)
	}
	return nil
}
