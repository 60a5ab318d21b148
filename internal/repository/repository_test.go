package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"placement-match/internal/database"
	"placement-match/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRow assigns vals positionally, routing through sql.Scanner when the
// destination implements it, the way the driver does.
type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.vals) {
		return fmt.Errorf("scan dest mismatch: %d != %d", len(dest), len(r.vals))
	}
	for i, d := range dest {
		v := r.vals[i]
		if sc, ok := d.(sql.Scanner); ok {
			if err := sc.Scan(v); err != nil {
				return err
			}
			continue
		}
		switch p := d.(type) {
		case *string:
			*p = v.(string)
		case **string:
			if v == nil {
				*p = nil
			} else {
				s := v.(string)
				*p = &s
			}
		case *float64:
			*p = v.(float64)
		case **float64:
			if v == nil {
				*p = nil
			} else {
				f := v.(float64)
				*p = &f
			}
		default:
			return fmt.Errorf("unsupported scan type %T", d)
		}
	}
	return nil
}

type fakeRows struct {
	rows []fakeRow
	i    int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }
func (r *fakeRows) Next() bool {
	if r.i >= len(r.rows) {
		return false
	}
	r.i++
	return true
}
func (r *fakeRows) Scan(dest ...any) error { return r.rows[r.i-1].Scan(dest...) }

type fakeDB struct {
	row  fakeRow
	rows []fakeRow
}

func (d *fakeDB) Ping(context.Context) error                          { return nil }
func (d *fakeDB) Close() error                                        { return nil }
func (d *fakeDB) Exec(context.Context, string, ...any) (int64, error) { return 0, nil }
func (d *fakeDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return &fakeRows{rows: d.rows}, nil
}
func (d *fakeDB) QueryRow(context.Context, string, ...any) database.Row { return d.row }
func (d *fakeDB) Begin(context.Context) (database.Tx, error)          { return nil, errors.New("no tx") }
func (d *fakeDB) SQLDB() *sql.DB                                      { return nil }

func TestCandidateRepository_FindByID(t *testing.T) {
	id := uuid.New()
	db := &fakeDB{row: fakeRow{vals: []any{id.String(), "Asha", `["Python","SQL"]`, `not json`, `["chat app","compiler"]`, 8.2}}}

	c, err := NewPostgresCandidateRepository(db).FindByID(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, id, c.ID)
	assert.Equal(t, []string{"Python", "SQL"}, c.Skills.Sorted())
	assert.True(t, c.Courses.IsEmpty())
	assert.Equal(t, []string{"chat app", "compiler"}, c.Projects)
	assert.Equal(t, 8.2, c.Qualifier)
}

func TestCandidateRepository_NotFound(t *testing.T) {
	db := &fakeDB{row: fakeRow{err: pgx.ErrNoRows}}

	_, err := NewPostgresCandidateRepository(db).FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRequirementRepository_ListActive(t *testing.T) {
	groupID := uuid.New()
	db := &fakeDB{rows: []fakeRow{
		{vals: []any{uuid.NewString(), "Backend Intern", groupID.String(), "Acme", `["Go"]`, nil, nil, 7.0}},
		{vals: []any{uuid.NewString(), "Analyst", nil, "", `["SQL"]`, `["Statistics"]`, 6.5, nil}},
	}}

	reqs, err := NewPostgresRequirementRepository(db).ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, reqs, 2)

	assert.Equal(t, groupID, reqs[0].GroupID)
	assert.Nil(t, reqs[0].MinQualifier)
	require.NotNil(t, reqs[0].EffectiveMinQualifier())
	assert.Equal(t, 7.0, *reqs[0].EffectiveMinQualifier())
	assert.True(t, reqs[0].RequiredCourses.IsEmpty())

	assert.Equal(t, uuid.Nil, reqs[1].GroupID)
	assert.Equal(t, 6.5, *reqs[1].EffectiveMinQualifier())
	assert.Equal(t, []string{"Statistics"}, reqs[1].RequiredCourses.Sorted())
}

type memCache struct {
	data  map[string][]byte
	fail  bool
	sets  int
	reads int
}

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.reads++
	if c.fail {
		return false, errors.New("redis down")
	}
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	if c.fail {
		return errors.New("redis down")
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	c.sets++
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	delete(c.data, key)
	return nil
}

type countingCatalog struct {
	offerings []matching.CourseOffering
	calls     int
}

func (c *countingCatalog) ListOfferings(context.Context) ([]matching.CourseOffering, error) {
	c.calls++
	return c.offerings, nil
}

func TestCachedCatalogRepository(t *testing.T) {
	ctx := context.Background()
	next := &countingCatalog{offerings: []matching.CourseOffering{
		{ID: uuid.New(), Name: "Web Development Bootcamp", SkillsCovered: matching.NewTokenSet("HTML", "React")},
	}}
	cache := &memCache{data: map[string][]byte{}}
	repo := NewCachedCatalogRepository(next, cache, time.Minute, nil)

	first, err := repo.ListOfferings(ctx)
	require.NoError(t, err)
	second, err := repo.ListOfferings(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, next.calls)
	assert.Equal(t, 1, cache.sets)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.True(t, second[0].SkillsCovered.Has("React"))

	require.NoError(t, repo.Invalidate(ctx))
	_, err = repo.ListOfferings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)
}

func TestCachedCatalogRepository_CacheFailureFallsThrough(t *testing.T) {
	next := &countingCatalog{offerings: []matching.CourseOffering{{Name: "Java Programming Masterclass"}}}
	repo := NewCachedCatalogRepository(next, &memCache{data: map[string][]byte{}, fail: true}, time.Minute, nil)

	got, err := repo.ListOfferings(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, next.calls)
}
