package setup

import (
	"context"
	"reflect"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mkale/skillforge/internal/ledger"
	"github.com/mkale/skillforge/internal/quizgen"
	"github.com/mkale/skillforge/internal/router"
	"github.com/mkale/skillforge/internal/screens/challenge"
	"github.com/mkale/skillforge/internal/store"
)

// fakeProfileRepo records UpdateSkills calls.
type fakeProfileRepo struct {
	savedSkills []string
}

func (f *fakeProfileRepo) Create(context.Context, *store.ProfileRecord) error { return nil }
func (f *fakeProfileRepo) ByUsername(context.Context, string) (*store.ProfileRecord, error) {
	return nil, nil
}
func (f *fakeProfileRepo) ByID(context.Context, string) (*store.ProfileRecord, error) {
	return nil, nil
}
func (f *fakeProfileRepo) UpdateSkills(_ context.Context, _ string, skills []string) error {
	f.savedSkills = skills
	return nil
}
func (f *fakeProfileRepo) TouchLastSeen(context.Context, string) error        { return nil }
func (f *fakeProfileRepo) All(context.Context) ([]store.ProfileRecord, error) { return nil, nil }

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testSetup(skills []string) (*SetupScreen, *fakeProfileRepo) {
	profiles := &fakeProfileRepo{}
	s := New(quizgen.NewSource(nil), nil, profiles, "user-1", skills)
	return s, profiles
}

func TestPrefillsSkillsFromProfile(t *testing.T) {
	s, _ := testSetup([]string{"go", "sql"})
	if got := s.skillsInput.Value(); got != "go, sql" {
		t.Errorf("expected prefilled skills, got %q", got)
	}
}

func TestTabCyclesFocus(t *testing.T) {
	s, _ := testSetup(nil)

	for i, want := range []int{focusDifficulty, focusName, focusStart, focusSkills} {
		s.Update(specialKey(tea.KeyTab))
		if s.focus != want {
			t.Fatalf("tab %d: expected focus %d, got %d", i+1, want, s.focus)
		}
	}
}

func TestDifficultySelection(t *testing.T) {
	s, _ := testSetup(nil)
	s.Update(specialKey(tea.KeyTab)) // focus difficulty

	s.Update(specialKey(tea.KeyRight))
	if got := s.difficulties[s.diffIndex]; got != ledger.DifficultyHard {
		t.Errorf("expected hard after right, got %s", got)
	}

	s.Update(specialKey(tea.KeyLeft))
	s.Update(specialKey(tea.KeyLeft))
	if got := s.difficulties[s.diffIndex]; got != ledger.DifficultyEasy {
		t.Errorf("expected easy after two lefts, got %s", got)
	}

	// Left at the lower bound stays put.
	s.Update(specialKey(tea.KeyLeft))
	if s.diffIndex != 0 {
		t.Errorf("expected diffIndex pinned at 0, got %d", s.diffIndex)
	}
}

func TestStartRequiresSkills(t *testing.T) {
	s, _ := testSetup(nil)

	for i := 0; i < 3; i++ {
		s.Update(specialKey(tea.KeyTab)) // focus the start button
	}
	s.Update(specialKey(tea.KeyEnter))

	if s.errMsg == "" {
		t.Error("expected validation error with no skills")
	}
	if s.focus != focusSkills {
		t.Errorf("expected focus back on skills, got %d", s.focus)
	}
}

func TestStartReplacesWithChallenge(t *testing.T) {
	s, profiles := testSetup([]string{"go"})

	for i := 0; i < 3; i++ {
		s.Update(specialKey(tea.KeyTab))
	}
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command from start")
	}

	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := replace.Screen.(*challenge.ChallengeScreen); !ok {
		t.Errorf("expected challenge screen, got %T", replace.Screen)
	}
	if !reflect.DeepEqual(profiles.savedSkills, []string{"go"}) {
		t.Errorf("expected skills saved to profile, got %v", profiles.savedSkills)
	}
}

func TestParseSkills(t *testing.T) {
	got := parseSkills(" go , , sql,algorithms ")
	want := []string{"go", "sql", "algorithms"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseSkills = %v, want %v", got, want)
	}
	if parseSkills("  ,  ") != nil {
		t.Error("expected nil for blank input")
	}
}
