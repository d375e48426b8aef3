// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/afilmory-app/ent/photoasset"
	"github.com/anzhiyu-c/afilmory-app/ent/predicate"
)

// PhotoAssetDelete is the builder for deleting a PhotoAsset entity.
type PhotoAssetDelete struct {
	config
	hooks    []Hook
	mutation *PhotoAssetMutation
}

// Where appends a list predicates to the PhotoAssetDelete builder.
func (pad *PhotoAssetDelete) Where(ps ...predicate.PhotoAsset) *PhotoAssetDelete {
	pad.mutation.Where(ps...)
	return pad
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (pad *PhotoAssetDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, pad.sqlExec, pad.mutation, pad.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (pad *PhotoAssetDelete) ExecX(ctx context.Context) int {
	n, err := pad.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (pad *PhotoAssetDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(photoasset.Table, sqlgraph.NewFieldSpec(photoasset.FieldID, field.TypeUint))
	if ps := pad.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, pad.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	pad.mutation.done = true
	return affected, err
}

// PhotoAssetDeleteOne is the builder for deleting a single PhotoAsset entity.
type PhotoAssetDeleteOne struct {
	pad *PhotoAssetDelete
}

// Where appends a list predicates to the PhotoAssetDelete builder.
func (pado *PhotoAssetDeleteOne) Where(ps ...predicate.PhotoAsset) *PhotoAssetDeleteOne {
	pado.pad.mutation.Where(ps...)
	return pado
}

// Exec executes the deletion query.
func (pado *PhotoAssetDeleteOne) Exec(ctx context.Context) error {
	n, err := pado.pad.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{photoasset.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (pado *PhotoAssetDeleteOne) ExecX(ctx context.Context) {
	if err := pado.Exec(ctx); err != nil {
		panic(err)
	}
}
