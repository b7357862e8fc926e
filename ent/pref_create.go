// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkobayashi/kanjidrill/ent/pref"
)

// PrefCreate is the builder for creating a Pref entity.
type PrefCreate struct {
	config
	mutation *PrefMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetKey sets the "key" field.
func (_c *PrefCreate) SetKey(v string) *PrefCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *PrefCreate) SetValue(v json.RawMessage) *PrefCreate {
	_c.mutation.SetValue(v)
	return _c
}

// Mutation returns the PrefMutation object of the builder.
func (_c *PrefCreate) Mutation() *PrefMutation {
	return _c.mutation
}

// Save creates the Pref in the database.
func (_c *PrefCreate) Save(ctx context.Context) (*Pref, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PrefCreate) SaveX(ctx context.Context) *Pref {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PrefCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PrefCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PrefCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "Pref.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := pref.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "Pref.key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "Pref.value"`)}
	}
	return nil
}

func (_c *PrefCreate) sqlSave(ctx context.Context) (*Pref, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PrefCreate) createSpec() (*Pref, *sqlgraph.CreateSpec) {
	var (
		_node = &Pref{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pref.Table, sqlgraph.NewFieldSpec(pref.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(pref.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(pref.FieldValue, field.TypeJSON, value)
		_node.Value = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Pref.Create().
//		SetKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PrefUpsert) {
//			SetKey(v+v).
//		}).
//		Exec(ctx)
func (_c *PrefCreate) OnConflict(opts ...sql.ConflictOption) *PrefUpsertOne {
	_c.conflict = opts
	return &PrefUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Pref.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PrefCreate) OnConflictColumns(columns ...string) *PrefUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PrefUpsertOne{
		create: _c,
	}
}

type (
	// PrefUpsertOne is the builder for "upsert"-ing
	//  one Pref node.
	PrefUpsertOne struct {
		create *PrefCreate
	}

	// PrefUpsert is the "OnConflict" setter.
	PrefUpsert struct {
		*sql.UpdateSet
	}
)

// SetKey sets the "key" field.
func (u *PrefUpsert) SetKey(v string) *PrefUpsert {
	u.Set(pref.FieldKey, v)
	return u
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *PrefUpsert) UpdateKey() *PrefUpsert {
	u.SetExcluded(pref.FieldKey)
	return u
}

// SetValue sets the "value" field.
func (u *PrefUpsert) SetValue(v json.RawMessage) *PrefUpsert {
	u.Set(pref.FieldValue, v)
	return u
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *PrefUpsert) UpdateValue() *PrefUpsert {
	u.SetExcluded(pref.FieldValue)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Pref.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PrefUpsertOne) UpdateNewValues() *PrefUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Pref.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PrefUpsertOne) Ignore() *PrefUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PrefUpsertOne) DoNothing() *PrefUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PrefCreate.OnConflict
// documentation for more info.
func (u *PrefUpsertOne) Update(set func(*PrefUpsert)) *PrefUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PrefUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *PrefUpsertOne) SetKey(v string) *PrefUpsertOne {
	return u.Update(func(s *PrefUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *PrefUpsertOne) UpdateKey() *PrefUpsertOne {
	return u.Update(func(s *PrefUpsert) {
		s.UpdateKey()
	})
}

// SetValue sets the "value" field.
func (u *PrefUpsertOne) SetValue(v json.RawMessage) *PrefUpsertOne {
	return u.Update(func(s *PrefUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *PrefUpsertOne) UpdateValue() *PrefUpsertOne {
	return u.Update(func(s *PrefUpsert) {
		s.UpdateValue()
	})
}

// Exec executes the query.
func (u *PrefUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PrefCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PrefUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PrefUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PrefUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PrefCreateBulk is the builder for creating many Pref entities in bulk.
type PrefCreateBulk struct {
	config
	err      error
	builders []*PrefCreate
	conflict []sql.ConflictOption
}

// Save creates the Pref entities in the database.
func (_c *PrefCreateBulk) Save(ctx context.Context) ([]*Pref, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Pref, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PrefMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PrefCreateBulk) SaveX(ctx context.Context) []*Pref {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PrefCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PrefCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Pref.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PrefUpsert) {
//			SetKey(v+v).
//		}).
//		Exec(ctx)
func (_c *PrefCreateBulk) OnConflict(opts ...sql.ConflictOption) *PrefUpsertBulk {
	_c.conflict = opts
	return &PrefUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Pref.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PrefCreateBulk) OnConflictColumns(columns ...string) *PrefUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PrefUpsertBulk{
		create: _c,
	}
}

// PrefUpsertBulk is the builder for "upsert"-ing
// a bulk of Pref nodes.
type PrefUpsertBulk struct {
	create *PrefCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Pref.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PrefUpsertBulk) UpdateNewValues() *PrefUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Pref.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PrefUpsertBulk) Ignore() *PrefUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PrefUpsertBulk) DoNothing() *PrefUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PrefCreateBulk.OnConflict
// documentation for more info.
func (u *PrefUpsertBulk) Update(set func(*PrefUpsert)) *PrefUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PrefUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *PrefUpsertBulk) SetKey(v string) *PrefUpsertBulk {
	return u.Update(func(s *PrefUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *PrefUpsertBulk) UpdateKey() *PrefUpsertBulk {
	return u.Update(func(s *PrefUpsert) {
		s.UpdateKey()
	})
}

// SetValue sets the "value" field.
func (u *PrefUpsertBulk) SetValue(v json.RawMessage) *PrefUpsertBulk {
	return u.Update(func(s *PrefUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *PrefUpsertBulk) UpdateValue() *PrefUpsertBulk {
	return u.Update(func(s *PrefUpsert) {
		s.UpdateValue()
	})
}

// Exec executes the query.
func (u *PrefUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PrefCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PrefCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PrefUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
