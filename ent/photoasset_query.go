// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/afilmory-app/ent/photoasset"
	"github.com/anzhiyu-c/afilmory-app/ent/predicate"
	"github.com/anzhiyu-c/afilmory-app/ent/tenant"
)

// PhotoAssetQuery is the builder for querying PhotoAsset entities.
type PhotoAssetQuery struct {
	config
	ctx        *QueryContext
	order      []photoasset.OrderOption
	inters     []Interceptor
	predicates []predicate.PhotoAsset
	withTenant *TenantQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PhotoAssetQuery builder.
func (paq *PhotoAssetQuery) Where(ps ...predicate.PhotoAsset) *PhotoAssetQuery {
	paq.predicates = append(paq.predicates, ps...)
	return paq
}

// Limit the number of records to be returned by this query.
func (paq *PhotoAssetQuery) Limit(limit int) *PhotoAssetQuery {
	paq.ctx.Limit = &limit
	return paq
}

// Offset to start from.
func (paq *PhotoAssetQuery) Offset(offset int) *PhotoAssetQuery {
	paq.ctx.Offset = &offset
	return paq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (paq *PhotoAssetQuery) Unique(unique bool) *PhotoAssetQuery {
	paq.ctx.Unique = &unique
	return paq
}

// Order specifies how the records should be ordered.
func (paq *PhotoAssetQuery) Order(o ...photoasset.OrderOption) *PhotoAssetQuery {
	paq.order = append(paq.order, o...)
	return paq
}

// QueryTenant chains the current query on the "tenant" edge.
func (paq *PhotoAssetQuery) QueryTenant() *TenantQuery {
	query := (&TenantClient{config: paq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := paq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := paq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(photoasset.Table, photoasset.FieldID, selector),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, photoasset.TenantTable, photoasset.TenantColumn),
		)
		fromU = sqlgraph.SetNeighbors(paq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PhotoAsset entity from the query.
// Returns a *NotFoundError when no PhotoAsset was found.
func (paq *PhotoAssetQuery) First(ctx context.Context) (*PhotoAsset, error) {
	nodes, err := paq.Limit(1).All(setContextOp(ctx, paq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{photoasset.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (paq *PhotoAssetQuery) FirstX(ctx context.Context) *PhotoAsset {
	node, err := paq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PhotoAsset ID from the query.
// Returns a *NotFoundError when no PhotoAsset ID was found.
func (paq *PhotoAssetQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = paq.Limit(1).IDs(setContextOp(ctx, paq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{photoasset.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (paq *PhotoAssetQuery) FirstIDX(ctx context.Context) uint {
	id, err := paq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PhotoAsset entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PhotoAsset entity is found.
// Returns a *NotFoundError when no PhotoAsset entities are found.
func (paq *PhotoAssetQuery) Only(ctx context.Context) (*PhotoAsset, error) {
	nodes, err := paq.Limit(2).All(setContextOp(ctx, paq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{photoasset.Label}
	default:
		return nil, &NotSingularError{photoasset.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (paq *PhotoAssetQuery) OnlyX(ctx context.Context) *PhotoAsset {
	node, err := paq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PhotoAsset ID in the query.
// Returns a *NotSingularError when more than one PhotoAsset ID is found.
// Returns a *NotFoundError when no entities are found.
func (paq *PhotoAssetQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = paq.Limit(2).IDs(setContextOp(ctx, paq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{photoasset.Label}
	default:
		err = &NotSingularError{photoasset.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (paq *PhotoAssetQuery) OnlyIDX(ctx context.Context) uint {
	id, err := paq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PhotoAssets.
func (paq *PhotoAssetQuery) All(ctx context.Context) ([]*PhotoAsset, error) {
	ctx = setContextOp(ctx, paq.ctx, ent.OpQueryAll)
	if err := paq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PhotoAsset, *PhotoAssetQuery]()
	return withInterceptors[[]*PhotoAsset](ctx, paq, qr, paq.inters)
}

// AllX is like All, but panics if an error occurs.
func (paq *PhotoAssetQuery) AllX(ctx context.Context) []*PhotoAsset {
	nodes, err := paq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PhotoAsset IDs.
func (paq *PhotoAssetQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if paq.ctx.Unique == nil && paq.path != nil {
		paq.Unique(true)
	}
	ctx = setContextOp(ctx, paq.ctx, ent.OpQueryIDs)
	if err = paq.Select(photoasset.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (paq *PhotoAssetQuery) IDsX(ctx context.Context) []uint {
	ids, err := paq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (paq *PhotoAssetQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, paq.ctx, ent.OpQueryCount)
	if err := paq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, paq, querierCount[*PhotoAssetQuery](), paq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (paq *PhotoAssetQuery) CountX(ctx context.Context) int {
	count, err := paq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (paq *PhotoAssetQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, paq.ctx, ent.OpQueryExist)
	switch _, err := paq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (paq *PhotoAssetQuery) ExistX(ctx context.Context) bool {
	exist, err := paq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PhotoAssetQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (paq *PhotoAssetQuery) Clone() *PhotoAssetQuery {
	if paq == nil {
		return nil
	}
	return &PhotoAssetQuery{
		config:     paq.config,
		ctx:        paq.ctx.Clone(),
		order:      append([]photoasset.OrderOption{}, paq.order...),
		inters:     append([]Interceptor{}, paq.inters...),
		predicates: append([]predicate.PhotoAsset{}, paq.predicates...),
		withTenant: paq.withTenant.Clone(),
		// clone intermediate query.
		sql:  paq.sql.Clone(),
		path: paq.path,
	}
}

// WithTenant tells the query-builder to eager-load the nodes that are connected to
// the "tenant" edge. The optional arguments are used to configure the query builder of the edge.
func (paq *PhotoAssetQuery) WithTenant(opts ...func(*TenantQuery)) *PhotoAssetQuery {
	query := (&TenantClient{config: paq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	paq.withTenant = query
	return paq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PhotoAsset.Query().
//		GroupBy(photoasset.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (paq *PhotoAssetQuery) GroupBy(field string, fields ...string) *PhotoAssetGroupBy {
	paq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PhotoAssetGroupBy{build: paq}
	grbuild.flds = &paq.ctx.Fields
	grbuild.label = photoasset.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.PhotoAsset.Query().
//		Select(photoasset.FieldCreatedAt).
//		Scan(ctx, &v)
func (paq *PhotoAssetQuery) Select(fields ...string) *PhotoAssetSelect {
	paq.ctx.Fields = append(paq.ctx.Fields, fields...)
	sbuild := &PhotoAssetSelect{PhotoAssetQuery: paq}
	sbuild.label = photoasset.Label
	sbuild.flds, sbuild.scan = &paq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PhotoAssetSelect configured with the given aggregations.
func (paq *PhotoAssetQuery) Aggregate(fns ...AggregateFunc) *PhotoAssetSelect {
	return paq.Select().Aggregate(fns...)
}

func (paq *PhotoAssetQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range paq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, paq); err != nil {
				return err
			}
		}
	}
	for _, f := range paq.ctx.Fields {
		if !photoasset.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if paq.path != nil {
		prev, err := paq.path(ctx)
		if err != nil {
			return err
		}
		paq.sql = prev
	}
	return nil
}

func (paq *PhotoAssetQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PhotoAsset, error) {
	var (
		nodes       = []*PhotoAsset{}
		_spec       = paq.querySpec()
		loadedTypes = [1]bool{
			paq.withTenant != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PhotoAsset).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PhotoAsset{config: paq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, paq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := paq.withTenant; query != nil {
		if err := paq.loadTenant(ctx, query, nodes, nil,
			func(n *PhotoAsset, e *Tenant) { n.Edges.Tenant = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (paq *PhotoAssetQuery) loadTenant(ctx context.Context, query *TenantQuery, nodes []*PhotoAsset, init func(*PhotoAsset), assign func(*PhotoAsset, *Tenant)) error {
	ids := make([]uint, 0, len(nodes))
	nodeids := make(map[uint][]*PhotoAsset)
	for i := range nodes {
		fk := nodes[i].TenantID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(tenant.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "tenant_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (paq *PhotoAssetQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := paq.querySpec()
	_spec.Node.Columns = paq.ctx.Fields
	if len(paq.ctx.Fields) > 0 {
		_spec.Unique = paq.ctx.Unique != nil && *paq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, paq.driver, _spec)
}

func (paq *PhotoAssetQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(photoasset.Table, photoasset.Columns, sqlgraph.NewFieldSpec(photoasset.FieldID, field.TypeUint))
	_spec.From = paq.sql
	if unique := paq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if paq.path != nil {
		_spec.Unique = true
	}
	if fields := paq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, photoasset.FieldID)
		for i := range fields {
			if fields[i] != photoasset.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if paq.withTenant != nil {
			_spec.Node.AddColumnOnce(photoasset.FieldTenantID)
		}
	}
	if ps := paq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := paq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := paq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := paq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (paq *PhotoAssetQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(paq.driver.Dialect())
	t1 := builder.Table(photoasset.Table)
	columns := paq.ctx.Fields
	if len(columns) == 0 {
		columns = photoasset.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if paq.sql != nil {
		selector = paq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if paq.ctx.Unique != nil && *paq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range paq.predicates {
		p(selector)
	}
	for _, p := range paq.order {
		p(selector)
	}
	if offset := paq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := paq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// PhotoAssetGroupBy is the group-by builder for PhotoAsset entities.
type PhotoAssetGroupBy struct {
	selector
	build *PhotoAssetQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (pagb *PhotoAssetGroupBy) Aggregate(fns ...AggregateFunc) *PhotoAssetGroupBy {
	pagb.fns = append(pagb.fns, fns...)
	return pagb
}

// Scan applies the selector query and scans the result into the given value.
func (pagb *PhotoAssetGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, pagb.build.ctx, ent.OpQueryGroupBy)
	if err := pagb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PhotoAssetQuery, *PhotoAssetGroupBy](ctx, pagb.build, pagb, pagb.build.inters, v)
}

func (pagb *PhotoAssetGroupBy) sqlScan(ctx context.Context, root *PhotoAssetQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(pagb.fns))
	for _, fn := range pagb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*pagb.flds)+len(pagb.fns))
		for _, f := range *pagb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*pagb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := pagb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// PhotoAssetSelect is the builder for selecting fields of PhotoAsset entities.
type PhotoAssetSelect struct {
	*PhotoAssetQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (pas *PhotoAssetSelect) Aggregate(fns ...AggregateFunc) *PhotoAssetSelect {
	pas.fns = append(pas.fns, fns...)
	return pas
}

// Scan applies the selector query and scans the result into the given value.
func (pas *PhotoAssetSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, pas.ctx, ent.OpQuerySelect)
	if err := pas.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PhotoAssetQuery, *PhotoAssetSelect](ctx, pas.PhotoAssetQuery, pas, pas.inters, v)
}

func (pas *PhotoAssetSelect) sqlScan(ctx context.Context, root *PhotoAssetQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(pas.fns))
	for _, fn := range pas.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*pas.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := pas.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
