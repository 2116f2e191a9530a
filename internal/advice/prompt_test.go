package advice

import (
	"strings"
	"testing"

	"github.com/adhdflow/adhdflow/internal/quiz"
)

func TestBuildAdviceUserMessage_NoChallenges(t *testing.T) {
	p := Profile{ADHDType: quiz.TypeUnspecified, FocusScore: 10, OrganizationScore: 10}
	msg := buildAdviceUserMessage(p, Environment)

	if !strings.Contains(msg, "They have general ADHD challenges.") {
		t.Errorf("expected generic challenges line:\n%s", msg)
	}
	if strings.Contains(msg, "motivation") {
		t.Errorf("motivation line should be omitted when unset:\n%s", msg)
	}
	if !strings.Contains(msg, "please provide 3-5 "+Environment.Instruction()) {
		t.Errorf("missing instruction:\n%s", msg)
	}
}

func TestBuildAdviceUserMessage_UnknownTypeFallsBack(t *testing.T) {
	msg := buildAdviceUserMessage(testProfile(), ContentType("astrology"))
	if !strings.Contains(msg, Strategies.Instruction()) {
		t.Errorf("expected strategies fallback:\n%s", msg)
	}
}

func TestBuildAdviceUserMessage_Motivation(t *testing.T) {
	msg := buildAdviceUserMessage(testProfile(), Strategies)
	if !strings.Contains(msg, "Their motivation level is moderate.") {
		t.Errorf("missing motivation line:\n%s", msg)
	}
}

func TestContentTypes(t *testing.T) {
	types := ContentTypes()
	if len(types) != 11 {
		t.Fatalf("expected 11 content types, got %d", len(types))
	}
	if types[0] != DailyTips {
		t.Errorf("first content type = %q, want daily-tips", types[0])
	}

	seen := map[ContentType]bool{}
	for _, ct := range types {
		if seen[ct] {
			t.Errorf("duplicate content type %q", ct)
		}
		seen[ct] = true
		if ct.Label() == "" || ct.Instruction() == "" {
			t.Errorf("content type %q lacks label or instruction", ct)
		}
	}

	types[0] = "mutated"
	if ContentTypes()[0] != DailyTips {
		t.Error("ContentTypes must return a copy")
	}
}

func TestFeaturedContentTypes(t *testing.T) {
	got := FeaturedContentTypes()
	want := []ContentType{DailyTips, FocusStrategies, OrganizationStrategies, ProductivityTips, EmotionalRegulation, MorningRoutine}
	if len(got) != len(want) {
		t.Fatalf("expected %d featured types, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("featured[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseContentType(t *testing.T) {
	ct, err := ParseContentType("morning-routine")
	if err != nil || ct != MorningRoutine {
		t.Fatalf("ParseContentType = %q, %v", ct, err)
	}
	if MorningRoutine.Label() != "Morning Routine" {
		t.Errorf("label = %q", MorningRoutine.Label())
	}
	if _, err := ParseContentType("astrology"); err == nil {
		t.Error("expected error for unknown content type")
	}
}

func TestProfileFromResults(t *testing.T) {
	r := quiz.Results{
		ADHDType:          quiz.TypeCombined,
		FocusScore:        3,
		OrganizationScore: 4,
		PrimaryChallenges: []string{"Restlessness"},
	}
	p := ProfileFromResults(r)
	if p.ADHDType != quiz.TypeCombined || p.FocusScore != 3 || p.OrganizationScore != 4 {
		t.Errorf("profile = %+v", p)
	}
	if p.MotivationLevel != DefaultMotivationLevel {
		t.Errorf("motivation = %q", p.MotivationLevel)
	}
	p.PrimaryChallenges[0] = "changed"
	if r.PrimaryChallenges[0] != "Restlessness" {
		t.Error("profile must not share the challenges slice")
	}
}
