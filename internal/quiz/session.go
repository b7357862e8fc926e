package quiz

import (
	"github.com/mkobayashi/kanjidrill/internal/catalog"
)

// Config selects the session's policies and size.
type Config struct {
	Mode   Mode   // direction policy, possibly ModeMixed
	Style  Style  // answer-style policy, possibly StyleMixed
	Filter Filter // pool selection, recorded for the event log
	Count  int    // exact queue length, already clamped by the caller
}

// Question is the fully resolved state of one queue position.
type Question struct {
	Item        catalog.Item
	Mode        Mode
	Style       Style
	Prompt      Prompt
	Pack        *ChoicePack // set only for multiple choice
	Slots       int         // typing inputs to render
	MultiActive bool
	Index       int // 0-based queue position
	Total       int
}

// Deps are the collaborators a session needs: the full catalog for
// distractor drawing, the stat recorder, and callbacks re-read at the
// start of every question build.
type Deps struct {
	Items    []catalog.Item
	Recorder Recorder
	Settings func() Settings
	Excluded func(id string) bool
}

// Session is one study run over a shuffled queue. All mutation happens
// through Submit*/Advance/Stop in response to discrete user actions; the
// locked flag is the sole guard against duplicate grading.
type Session struct {
	cfg      Config
	deps     Deps
	resolver *Resolver

	queue  []catalog.Item
	cur    *Question
	idx    int
	streak int
	best   int
	graded int
	hits   int
	locked bool
}

// NewSession builds the queue from pool and prepares the first question.
// Returns ErrEmptyPool when pool is empty; no state is created.
func NewSession(cfg Config, pool []catalog.Item, resolver *Resolver, deps Deps) (*Session, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	s := &Session{
		cfg:      cfg,
		deps:     deps,
		resolver: resolver,
		queue:    resolver.buildQueue(pool, cfg.Count),
	}
	s.prepare()
	return s, nil
}

// Current returns the active question, nil when the session is complete
// or stopped.
func (s *Session) Current() *Question {
	return s.cur
}

// Completed reports whether every queue position has been served.
func (s *Session) Completed() bool {
	return s.idx >= len(s.queue)
}

// Locked reports whether the current question has been graded and is
// awaiting an advance.
func (s *Session) Locked() bool {
	return s.locked
}

// Streak returns the current run of consecutive correct answers.
func (s *Session) Streak() int {
	return s.streak
}

// Total returns the queue length.
func (s *Session) Total() int {
	return len(s.queue)
}

// Filter returns the pool filter the session was built with.
func (s *Session) Filter() Filter {
	return s.cfg.Filter
}

// SubmitChoice grades the option at index for the current multiple-choice
// question. Returns ok=false, without recording anything, when the
// question is already graded, the session is complete, or the current
// style is not multiple choice.
func (s *Session) SubmitChoice(index int) (Result, bool) {
	if s.locked || s.cur == nil || s.cur.Style != StyleMultipleChoice || s.cur.Pack == nil {
		return Result{}, false
	}
	res := gradeChoice(*s.cur.Pack, index)
	s.finishGrade(res)
	return res, true
}

// SubmitTyping grades the typed slot values for the current typing
// question. Returns ok=false, without recording anything, when grading
// is not currently possible.
func (s *Session) SubmitTyping(inputs []string) (Result, bool) {
	if s.locked || s.cur == nil || s.cur.Style != StyleTyping {
		return Result{}, false
	}
	res := gradeTyping(s.cur.Item, s.cur.Mode, inputs, s.cur.MultiActive)
	s.finishGrade(res)
	return res, true
}

// finishGrade applies the streak rules and records the outcome exactly
// once. The locked flag is set before any side effect so a re-entrant
// submission (e.g. from a pending timer) can never grade twice.
func (s *Session) finishGrade(res Result) {
	item := s.cur.Item
	s.locked = true

	s.graded++
	if res.Correct {
		s.hits++
		s.streak++
		if s.streak > s.best {
			s.best = s.streak
		}
		s.deps.Recorder.ObserveStreak(s.streak)
	} else {
		s.streak = 0
	}
	s.deps.Recorder.RecordStat(item.ID, item.Section, res.Correct)
}

// Advance moves to the next queue position and prepares its question.
// Returns false when the queue is exhausted; grading is then disabled
// until a new session is built.
func (s *Session) Advance() bool {
	if s.cur == nil {
		return false
	}
	s.idx++
	if s.idx >= len(s.queue) {
		s.cur = nil
		s.locked = false
		return false
	}
	s.prepare()
	return true
}

// Stop tears the session down: the queue is cleared, the current item
// discarded and the lock released, so no stale callback can mutate a
// successor session.
func (s *Session) Stop() {
	s.queue = nil
	s.cur = nil
	s.idx = 0
	s.locked = false
}

// prepare resolves mode and style for the current position, builds the
// mode-specific question data and releases the lock. Settings are
// re-read on every call.
func (s *Session) prepare() {
	item := s.queue[s.idx]
	settings := s.deps.Settings()

	mode := s.resolver.ResolveMode(s.cfg.Mode)
	style := s.resolver.ResolveStyle(s.cfg.Style)

	q := &Question{
		Item:   item,
		Mode:   mode,
		Style:  style,
		Prompt: BuildPrompt(item, mode, settings.ShowReadings),
		Index:  s.idx,
		Total:  len(s.queue),
	}

	if style == StyleMultipleChoice {
		pack := s.resolver.BuildChoices(s.deps.Items, item, mode, settings.ChoiceCount)
		q.Pack = &pack
	} else {
		q.MultiActive = MultiTypingActive(item, mode, settings, s.deps.Excluded)
		q.Slots = TypingSlots(item, q.MultiActive)
	}

	s.cur = q
	s.locked = false
}

// Summary captures the session's final numbers.
type Summary struct {
	Questions  int
	Correct    int
	BestStreak int
	Accuracy   float64
}

// Summarize returns the totals for the questions graded so far.
func (s *Session) Summarize() Summary {
	sum := Summary{
		Questions:  s.graded,
		Correct:    s.hits,
		BestStreak: s.best,
	}
	if s.graded > 0 {
		sum.Accuracy = float64(s.hits) / float64(s.graded)
	}
	return sum
}
