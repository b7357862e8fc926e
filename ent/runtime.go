// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mkobayashi/kanjidrill/ent/answerevent"
	"github.com/mkobayashi/kanjidrill/ent/pref"
	"github.com/mkobayashi/kanjidrill/ent/schema"
	"github.com/mkobayashi/kanjidrill/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescItemID is the schema descriptor for item_id field.
	answereventDescItemID := answereventFields[1].Descriptor()
	// answerevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	answerevent.ItemIDValidator = answereventDescItemID.Validators[0].(func(string) error)
	// answereventDescSection is the schema descriptor for section field.
	answereventDescSection := answereventFields[2].Descriptor()
	// answerevent.SectionValidator is a validator for the "section" field. It is called by the builders before save.
	answerevent.SectionValidator = answereventDescSection.Validators[0].(func(string) error)
	// answereventDescMode is the schema descriptor for mode field.
	answereventDescMode := answereventFields[3].Descriptor()
	// answerevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	answerevent.ModeValidator = answereventDescMode.Validators[0].(func(string) error)
	// answereventDescAnswerStyle is the schema descriptor for answer_style field.
	answereventDescAnswerStyle := answereventFields[4].Descriptor()
	// answerevent.AnswerStyleValidator is a validator for the "answer_style" field. It is called by the builders before save.
	answerevent.AnswerStyleValidator = answereventDescAnswerStyle.Validators[0].(func(string) error)
	// answereventDescExpected is the schema descriptor for expected field.
	answereventDescExpected := answereventFields[6].Descriptor()
	// answerevent.ExpectedValidator is a validator for the "expected" field. It is called by the builders before save.
	answerevent.ExpectedValidator = answereventDescExpected.Validators[0].(func(string) error)
	prefFields := schema.Pref{}.Fields()
	_ = prefFields
	// prefDescKey is the schema descriptor for key field.
	prefDescKey := prefFields[0].Descriptor()
	// pref.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	pref.KeyValidator = prefDescKey.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescSection is the schema descriptor for section field.
	sessioneventDescSection := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultSection holds the default value on creation for the section field.
	sessionevent.DefaultSection = sessioneventDescSection.Default.(string)
	// sessioneventDescStarredOnly is the schema descriptor for starred_only field.
	sessioneventDescStarredOnly := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultStarredOnly holds the default value on creation for the starred_only field.
	sessionevent.DefaultStarredOnly = sessioneventDescStarredOnly.Default.(bool)
	// sessioneventDescQuestions is the schema descriptor for questions field.
	sessioneventDescQuestions := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultQuestions holds the default value on creation for the questions field.
	sessionevent.DefaultQuestions = sessioneventDescQuestions.Default.(int)
	// sessioneventDescCorrect is the schema descriptor for correct field.
	sessioneventDescCorrect := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCorrect holds the default value on creation for the correct field.
	sessionevent.DefaultCorrect = sessioneventDescCorrect.Default.(int)
	// sessioneventDescBestStreak is the schema descriptor for best_streak field.
	sessioneventDescBestStreak := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultBestStreak holds the default value on creation for the best_streak field.
	sessionevent.DefaultBestStreak = sessioneventDescBestStreak.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
