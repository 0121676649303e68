package campaign

import (
	"strings"
	"testing"
	"time"

	"github.com/tanach-study/email-automation/internal/model"
)

func dataWithParts(parts ...model.TemplatePart) *model.TemplateData {
	return &model.TemplateData{
		SectionName:  "Perek",
		SectionTitle: "Yehoshua 3",
		Parts:        parts,
	}
}

// Locks in the single-part quirk: the range prints the unit twice, not
// unit:part. Do not "fix" without product sign-off.
func TestTextRangeSinglePart(t *testing.T) {
	got := textRange([]model.TemplatePart{{Unit: 3, Part: 5}})
	if got != "3:3" {
		t.Errorf("expected %q, got %q", "3:3", got)
	}
}

func TestTextRangeSingleUnitMultipleParts(t *testing.T) {
	got := textRange([]model.TemplatePart{{Unit: 3, Part: 5}, {Unit: 3, Part: 7}})
	if got != "3:3-7" {
		t.Errorf("expected %q, got %q", "3:3-7", got)
	}
}

func TestTextRangeSpansUnits(t *testing.T) {
	got := textRange([]model.TemplatePart{{Unit: 2, Part: 1}, {Unit: 4, Part: 9}})
	if got != "2:2 - 4:9" {
		t.Errorf("expected %q, got %q", "2:2 - 4:9", got)
	}
}

func TestSubject(t *testing.T) {
	subject := Subject(dataWithParts(model.TemplatePart{Unit: 3, Part: 5}))
	want := "Perek Yehoshua 3: 3:3"
	if subject != want {
		t.Errorf("expected %q, got %q", want, subject)
	}
}

func TestCampaignNameUniqueAcrossInstants(t *testing.T) {
	rc := model.RunContext{Date: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)}
	data := dataWithParts(model.TemplatePart{Unit: 3, Part: 5})

	subject1 := Subject(data)
	subject2 := Subject(data)
	if subject1 != subject2 {
		t.Fatalf("subjects should be identical: %q vs %q", subject1, subject2)
	}

	t1 := time.Date(2024, 3, 14, 6, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Millisecond)

	name1 := CampaignName(rc, subject1, t1)
	name2 := CampaignName(rc, subject2, t2)
	if name1 == name2 {
		t.Errorf("campaign names should differ across instants: %q", name1)
	}

	if !strings.HasSuffix(name1, "- 03/14/2024") {
		t.Errorf("expected MM/DD/YYYY date suffix, got %q", name1)
	}
	if !strings.HasPrefix(name1, "EMAIL ") {
		t.Errorf("expected marker prefix, got %q", name1)
	}
}
