// Package solarsystem implements Solar System, a pairing game where each
// planet is dropped onto the description that belongs to it.
package solarsystem

import (
	"errors"
	"time"

	"github.com/vovakirdan/eduarcade/internal/config"
	"github.com/vovakirdan/eduarcade/internal/core"
)

// Messages shown after an attempt.
const (
	MessageCorrect  = "Correct!"
	MessageWrong    = "Try Again!"
	MessageComplete = "You Solved the Solar System! Great Job!"
)

var (
	ErrNoItems       = errors.New("solarsystem: no items to match")
	ErrBlankItem     = errors.New("solarsystem: item needs a name and a description")
	ErrDuplicateItem = errors.New("solarsystem: duplicate item name")
)

// Item is one planet and the description it pairs with.
type Item struct {
	Name        string
	Description string
	Color       string
}

// Verdict is the result of a match attempt.
type Verdict int

const (
	VerdictIgnored Verdict = iota // Not running, unknown item/slot or already matched
	VerdictCorrect
	VerdictWrong
)

// Rules are the tunables of a session, with delays already in ticks.
type Rules struct {
	Items        []Item
	CorrectTicks int
	WrongTicks   int
}

// RulesFromConfig converts a loaded config into session rules.
func RulesFromConfig(cfg config.SolarSystemConfig, tickRate int) Rules {
	items := make([]Item, len(cfg.Planets))
	for i, p := range cfg.Planets {
		items[i] = Item{Name: p.Name, Description: p.Description, Color: p.Color}
	}
	return Rules{
		Items:        items,
		CorrectTicks: core.TicksFor(time.Duration(cfg.Timing.CorrectMessageMs)*time.Millisecond, tickRate),
		WrongTicks:   core.TicksFor(time.Duration(cfg.Timing.WrongMessageMs)*time.Millisecond, tickRate),
	}
}

// ItemView is an item in display order.
type ItemView struct {
	Item
	Matched bool
}

// SlotView is a description slot in display order. Name is filled in once
// the slot is matched.
type SlotView struct {
	Description string
	Name        string
	Matched     bool
}

// Snapshot is a read-only view of a session.
type Snapshot struct {
	Status   core.Status
	Items    []ItemView
	Slots    []SlotView
	Matched  int
	Attempts int
	Message  string
}

// Session is one pairing round.
type Session struct {
	rules Rules
	rng   core.Rand
	sched *core.Scheduler

	status    core.Status
	itemOrder []int
	slotOrder []int
	matched   map[string]bool
	attempts  int
	message   string
	msgTimer  core.TimerID
}

// NewSession creates a session that has not started yet.
func NewSession(rules Rules, rng core.Rand) *Session {
	return &Session{
		rules:   rules,
		rng:     rng,
		sched:   core.NewScheduler(),
		matched: make(map[string]bool),
	}
}

// Start shuffles items and slots independently and begins a round.
// It refuses to start on empty or malformed item data and leaves the
// session untouched in that case.
func (s *Session) Start() error {
	if err := validateItems(s.rules.Items); err != nil {
		return err
	}

	s.sched.Reset()
	s.status = core.StatusInProgress
	s.itemOrder = s.permutation()
	s.slotOrder = s.permutation()
	s.matched = make(map[string]bool)
	s.attempts = 0
	s.message = ""
	s.msgTimer = 0
	return nil
}

func validateItems(items []Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if it.Name == "" || it.Description == "" {
			return ErrBlankItem
		}
		if seen[it.Name] {
			return ErrDuplicateItem
		}
		seen[it.Name] = true
	}
	return nil
}

func (s *Session) permutation() []int {
	order := make([]int, len(s.rules.Items))
	for i := range order {
		order[i] = i
	}
	s.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return order
}

// AttemptMatch drops the named item onto a description slot, addressed by
// its display position.
func (s *Session) AttemptMatch(item string, slot int) Verdict {
	if s.status != core.StatusInProgress || slot < 0 || slot >= len(s.slotOrder) {
		return VerdictIgnored
	}
	expected := s.rules.Items[s.slotOrder[slot]].Name
	if s.matched[expected] || s.matched[item] || !s.hasItem(item) {
		return VerdictIgnored
	}

	s.attempts++
	if item != expected {
		s.flash(MessageWrong, s.rules.WrongTicks)
		return VerdictWrong
	}

	s.matched[item] = true
	if len(s.matched) == len(s.rules.Items) {
		s.sched.Cancel(s.msgTimer)
		s.status = core.StatusEnded
		s.message = MessageComplete
		return VerdictCorrect
	}
	s.flash(MessageCorrect, s.rules.CorrectTicks)
	return VerdictCorrect
}

// flash shows a message that clears itself after ticks.
func (s *Session) flash(msg string, ticks int) {
	s.sched.Cancel(s.msgTimer)
	s.message = msg
	s.msgTimer = s.sched.After(ticks, func() {
		s.message = ""
	})
}

func (s *Session) hasItem(name string) bool {
	for _, it := range s.rules.Items {
		if it.Name == name {
			return true
		}
	}
	return false
}

// Tick advances message timers by one game tick.
func (s *Session) Tick() {
	s.sched.Advance()
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Status:   s.status,
		Items:    make([]ItemView, len(s.itemOrder)),
		Slots:    make([]SlotView, len(s.slotOrder)),
		Matched:  len(s.matched),
		Attempts: s.attempts,
		Message:  s.message,
	}
	for i, idx := range s.itemOrder {
		it := s.rules.Items[idx]
		snap.Items[i] = ItemView{Item: it, Matched: s.matched[it.Name]}
	}
	for i, idx := range s.slotOrder {
		it := s.rules.Items[idx]
		slot := SlotView{Description: it.Description, Matched: s.matched[it.Name]}
		if slot.Matched {
			slot.Name = it.Name
		}
		snap.Slots[i] = slot
	}
	return snap
}

// SlotFor returns the display position of the slot that belongs to name.
func (s *Session) SlotFor(name string) (int, bool) {
	for i, idx := range s.slotOrder {
		if s.rules.Items[idx].Name == name {
			return i, true
		}
	}
	return 0, false
}
