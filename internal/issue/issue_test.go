// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	t.Parallel()

	if ConfigLoadFailedId != 1 {
		t.Errorf("ConfigLoadFailedId = %d, want 1", ConfigLoadFailedId)
	}

	ids := []Id{ConfigLoadFailedId, BenchmarkInterruptedId, WorkloadFailedId}
	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
		if Get(id) == nil {
			t.Errorf("Get(%d) returned nil", id)
		}
	}
}

func TestGet_Unknown(t *testing.T) {
	t.Parallel()

	if Get(Id(999)) != nil {
		t.Error("Get(999) should return nil")
	}
}

func TestIssue_ExtLinksIsCopy(t *testing.T) {
	t.Parallel()

	iss := Get(ConfigLoadFailedId)
	links := iss.ExtLinks()
	if len(links) == 0 {
		t.Fatal("expected external links")
	}
	links[0] = "mutated"
	if iss.ExtLinks()[0] == "mutated" {
		t.Error("ExtLinks() must return a copy")
	}
}

func TestIssue_Render(t *testing.T) {
	t.Parallel()

	for _, id := range []Id{ConfigLoadFailedId, BenchmarkInterruptedId, WorkloadFailedId} {
		iss := Get(id)
		out, err := iss.Render("notty")
		if err != nil {
			t.Fatalf("Render(%d) error = %v", iss.Id(), err)
		}
		if strings.TrimSpace(out) == "" {
			t.Errorf("Render(%d) returned empty output", iss.Id())
		}
	}

	out, err := Get(ConfigLoadFailedId).Render("notty")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for _, want := range []string{"langbench config init", "See also", "cuelang.org"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered issue missing %q:\n%s", want, out)
		}
	}
}
