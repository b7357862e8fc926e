package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("section").
			Default("all").
			Comment("Lesson filter the session was built from"),
		field.Bool("starred_only").
			Default(false).
			Comment("Whether the pool was limited to starred items"),
		field.Int("questions").
			Default(0).
			Comment("Questions graded (on end only)"),
		field.Int("correct").
			Default(0).
			Comment("Correct answers (on end only)"),
		field.Int("best_streak").
			Default(0).
			Comment("Best streak within the session (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Elapsed seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
