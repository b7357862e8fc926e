package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single graded answer within a study session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("item_id").
			NotEmpty().
			Comment("Catalog item this question was for"),
		field.String("section").
			NotEmpty().
			Comment("Lesson the item belongs to"),
		field.String("mode").
			NotEmpty().
			Comment("k2m or m2k"),
		field.String("answer_style").
			NotEmpty().
			Comment("mc or typing"),
		field.String("given").
			Comment("What the learner answered (slots joined for multi-typing)"),
		field.String("expected").
			NotEmpty().
			Comment("The expected answer as displayed"),
		field.Bool("correct").
			Comment("Whether the answer was graded correct"),
		field.Int("time_ms").
			Comment("Milliseconds from prompt to grading"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("item_id"),
		index.Fields("correct"),
	}
}
