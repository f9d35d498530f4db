package binaryblitz

import (
	"strconv"
	"testing"

	"github.com/vovakirdan/eduarcade/internal/config"
	"github.com/vovakirdan/eduarcade/internal/core"
	"github.com/vovakirdan/eduarcade/internal/core/coretest"
)

func defaultRules() Rules {
	return RulesFromConfig(config.DefaultBinaryBlitzConfig())
}

func wrongOption(t *testing.T, c Challenge) string {
	t.Helper()
	for _, o := range c.Options {
		if o != c.Answer {
			return o
		}
	}
	t.Fatal("challenge has no wrong option")
	return ""
}

func TestTargetNineteen(t *testing.T) {
	s := NewSession(defaultRules(), coretest.NewSequence(9, 0, 1, 2))
	s.Start()

	c := s.Snapshot().Challenge
	if c.Target != 19 {
		t.Fatalf("Target = %d, want 19", c.Target)
	}
	if len(c.Options) != 4 {
		t.Fatalf("len(Options) = %d, want 4", len(c.Options))
	}

	count := 0
	seen := make(map[string]bool)
	for _, o := range c.Options {
		if seen[o] {
			t.Errorf("duplicate option %q", o)
		}
		seen[o] = true
		if o == "10011" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("10011 appears %d times, want 1", count)
	}

	if v := s.Select("10011"); v != VerdictCorrect {
		t.Fatalf("verdict = %v, want correct", v)
	}
	if s.Snapshot().Score != 10 {
		t.Errorf("Score = %d, want 10", s.Snapshot().Score)
	}
}

func TestThirdWrongAnswerEnds(t *testing.T) {
	s := NewSession(defaultRules(), core.NewRand(1))
	s.Start()

	for i := 1; i <= 3; i++ {
		before := s.Snapshot().Challenge
		if v := s.Select(wrongOption(t, before)); v != VerdictWrong {
			t.Fatalf("answer %d verdict = %v, want wrong", i, v)
		}
		snap := s.Snapshot()
		if snap.Wrong != i {
			t.Errorf("Wrong = %d, want %d", snap.Wrong, i)
		}
		if snap.Message != MessageWrong {
			t.Errorf("Message = %q, want %q", snap.Message, MessageWrong)
		}
		if i < 3 {
			if snap.Status != core.StatusInProgress {
				t.Fatalf("ended after %d wrong answers", i)
			}
			if snap.Challenge.Target != before.Target {
				t.Error("wrong answer replaced the challenge")
			}
		}
	}

	snap := s.Snapshot()
	if snap.Status != core.StatusEnded || snap.Lives != 0 {
		t.Errorf("status=%v lives=%d, want ended with 0 lives", snap.Status, snap.Lives)
	}
	if v := s.Select(snap.Challenge.Answer); v != VerdictIgnored {
		t.Errorf("select after end = %v, want ignored", v)
	}
}

func TestUnknownOptionIgnored(t *testing.T) {
	s := NewSession(defaultRules(), core.NewRand(2))
	s.Start()

	if v := s.Select("not binary"); v != VerdictIgnored {
		t.Errorf("verdict = %v, want ignored", v)
	}
	if s.Snapshot().Wrong != 0 {
		t.Error("unknown option counted as wrong")
	}
}

// The level check uses the score before the increment, so level 2 arrives on
// the sixth correct answer rather than the fifth.
func TestLevelUpUsesPreviousScore(t *testing.T) {
	s := NewSession(defaultRules(), core.NewRand(3))
	s.Start()

	for i := 1; i <= 5; i++ {
		s.Select(s.Snapshot().Challenge.Answer)
	}
	if snap := s.Snapshot(); snap.Score != 50 || snap.Level != 1 {
		t.Fatalf("after 5 correct: score=%d level=%d, want 50 and 1", snap.Score, snap.Level)
	}

	s.Select(s.Snapshot().Challenge.Answer)
	snap := s.Snapshot()
	if snap.Score != 60 || snap.Level != 2 {
		t.Fatalf("after 6 correct: score=%d level=%d, want 60 and 2", snap.Score, snap.Level)
	}
	if snap.Challenge.Target < 20 || snap.Challenge.Target >= 40 {
		t.Errorf("level 2 target %d outside [20, 40)", snap.Challenge.Target)
	}
}

func TestFixedLevelNeverChanges(t *testing.T) {
	rules := defaultRules()
	rules.LevelUpEvery = 0
	s := NewSession(rules, core.NewRand(4))
	s.Start()

	for range 20 {
		s.Select(s.Snapshot().Challenge.Answer)
	}
	if snap := s.Snapshot(); snap.Level != 1 || snap.Score != 200 {
		t.Errorf("level=%d score=%d, want 1 and 200", snap.Level, snap.Score)
	}
}

func TestStartResetsRound(t *testing.T) {
	s := NewSession(defaultRules(), core.NewRand(5))
	s.Start()
	for range 7 {
		s.Select(s.Snapshot().Challenge.Answer)
	}
	s.Select(wrongOption(t, s.Snapshot().Challenge))

	s.Start()
	snap := s.Snapshot()
	if snap.Score != 0 || snap.Level != 1 || snap.Wrong != 0 || snap.Message != "" {
		t.Errorf("Start did not reset: %+v", snap)
	}
}

func TestSnapshotOptionsAreCopies(t *testing.T) {
	s := NewSession(defaultRules(), core.NewRand(6))
	s.Start()

	snap := s.Snapshot()
	snap.Challenge.Options[0] = "mutated"
	if s.Snapshot().Challenge.Options[0] == "mutated" {
		t.Error("snapshot shares the option slice")
	}
}

func TestGenerateProperties(t *testing.T) {
	for level := 1; level <= 5; level++ {
		for seed := int64(0); seed < 50; seed++ {
			t.Run(strconv.Itoa(level)+"/"+strconv.FormatInt(seed, 10), func(t *testing.T) {
				c := Generate(core.NewRand(seed), level, 4)
				lo, hi := DrawRange(level)

				if c.Target < lo || c.Target >= hi {
					t.Errorf("target %d outside [%d, %d)", c.Target, lo, hi)
				}
				if c.Answer != ToBinary(c.Target) {
					t.Errorf("Answer = %q, want %q", c.Answer, ToBinary(c.Target))
				}

				seen := make(map[string]bool)
				hits := 0
				for _, o := range c.Options {
					if seen[o] {
						t.Errorf("duplicate option %q", o)
					}
					seen[o] = true
					n, err := strconv.ParseInt(o, 2, 64)
					if err != nil || int(n) < lo || int(n) >= hi {
						t.Errorf("option %q outside range", o)
					}
					if o == c.Answer {
						hits++
					}
				}
				if len(c.Options) != 4 || hits != 1 {
					t.Errorf("options=%v, want 4 with the answer once", c.Options)
				}
			})
		}
	}
}

// A source that keeps repeating itself must not stall option generation.
func TestGenerateWithRepeatingSource(t *testing.T) {
	c := Generate(coretest.NewSequence(0), 1, 10)
	if len(c.Options) != 10 {
		t.Fatalf("len(Options) = %d, want 10", len(c.Options))
	}
	if c.Target != 10 || c.Options[0] != "1010" {
		t.Errorf("target=%d first=%q", c.Target, c.Options[0])
	}
}

func TestToBinary(t *testing.T) {
	tests := map[int]string{10: "1010", 19: "10011", 20: "10100", 39: "100111"}
	for n, want := range tests {
		if got := ToBinary(n); got != want {
			t.Errorf("ToBinary(%d) = %q, want %q", n, got, want)
		}
	}
}
