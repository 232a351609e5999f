// Package session implements the wish lifecycle controller.
//
// A session moves Idle → Wishing → Opening and back to Idle on reset:
//
//	SetWish/Submit → Generator → (reveal delay) → Opening → Choose → Reset
//
// All mutations go through named transitions on Controller; the presentation
// layer reads Snapshot values and reacts to Update cues.
package session

import (
	"slices"

	"wishgallery/internal/gift"
	"wishgallery/internal/lang"
)

// State is the lifecycle state of a session.
type State int

const (
	StateIdle State = iota
	StateWishing
	StateOpening
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWishing:
		return "wishing"
	case StateOpening:
		return "opening"
	default:
		return "unknown"
	}
}

// NoChoice is the Chosen value of a session without a chosen gift.
const NoChoice = -1

// Snapshot is a read-only copy of the session state.
type Snapshot struct {
	ID       string
	Wish     string
	State    State
	Gifts    []gift.Message
	Chosen   int
	Language lang.Language
	Epoch    uint64
}

// HasChoice reports whether a gift has been chosen this cycle.
func (s Snapshot) HasChoice() bool {
	return s.Chosen != NoChoice
}

// ChosenGift returns the chosen gift, if any.
func (s Snapshot) ChosenGift() (gift.Message, bool) {
	if !s.HasChoice() || s.Chosen >= len(s.Gifts) {
		return gift.Message{}, false
	}
	return s.Gifts[s.Chosen], true
}

// Cue tells the presentation layer where to bring the view after a change.
type Cue int

const (
	CueNone Cue = iota
	// CueReveal follows the transition into Opening.
	CueReveal
	// CueChosen follows a successful Choose.
	CueChosen
)

func (c Cue) String() string {
	switch c {
	case CueReveal:
		return "reveal"
	case CueChosen:
		return "chosen"
	default:
		return "none"
	}
}

// Update is delivered to the observer after every state change.
type Update struct {
	Snapshot Snapshot
	Cue      Cue
}

// record is the mutable session state owned by Controller.
type record struct {
	wish     string
	state    State
	gifts    []gift.Message
	chosen   int
	language lang.Language
}

func (r *record) clear() {
	r.wish = ""
	r.state = StateIdle
	r.gifts = nil
	r.chosen = NoChoice
}

func (r *record) snapshot(id string, epoch uint64) Snapshot {
	return Snapshot{
		ID:       id,
		Wish:     r.wish,
		State:    r.state,
		Gifts:    slices.Clone(r.gifts),
		Chosen:   r.chosen,
		Language: r.language,
		Epoch:    epoch,
	}
}
