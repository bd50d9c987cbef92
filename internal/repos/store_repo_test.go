package repos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodwaste/internal/domain"
	"foodwaste/internal/fixture"
	"foodwaste/internal/ingest"
	"foodwaste/internal/repos"
)

func TestReplaceThenDumpKeepsSourceOrder(t *testing.T) {
	db := fixture.Open(t)
	store := repos.NewStoreRepo(db)

	tbl, err := store.Dump(ingest.Providers)
	require.NoError(t, err)
	assert.Equal(t, ingest.Headers[ingest.Providers], tbl.Columns)
	require.Equal(t, 4, tbl.Len())
	assert.Equal(t, []any{int64(1), "Green Grocer", "Supermarket", "Springfield", "555-0101"}, tbl.Rows[0])
	assert.Equal(t, int64(4), tbl.Rows[3][0])

	tbl, err = store.Dump(ingest.Listings)
	require.NoError(t, err)
	var ids []any
	for _, r := range tbl.Rows {
		ids = append(ids, r[0])
	}
	assert.Equal(t, []any{int64(10), int64(11), int64(12), int64(13), int64(14)}, ids)
	assert.Nil(t, tbl.Rows[3][4], "blank Provider_ID is stored as NULL")

	counts, err := store.Counts()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"providers": 4, "receivers": 2, "food_listings": 5, "claims": 4}, counts)
}

func TestDumpUnknownTable(t *testing.T) {
	store := repos.NewStoreRepo(fixture.Open(t))
	_, err := store.Dump("sqlite_master")
	assert.ErrorIs(t, err, domain.ErrUnknownTable)
}

func TestReplaceIsAtomic(t *testing.T) {
	db := fixture.Open(t)
	store := repos.NewStoreRepo(db)

	b, err := ingest.Read(fixture.Sources())
	require.NoError(t, err)
	b.Providers = b.Providers[:1]
	bad := b.Claims[0]
	bad.Status = "Lost" // CHECK constraint fails the last table
	b.Claims = append(b.Claims, bad)

	err = store.Replace(b)
	assert.ErrorIs(t, err, domain.ErrValidation)

	counts, err := store.Counts()
	require.NoError(t, err)
	assert.Equal(t, 4, counts[ingest.Providers], "previous contents survive a failed replace")
	assert.Equal(t, 4, counts[ingest.Claims])
}

func TestReplaceWithNewData(t *testing.T) {
	db := fixture.Open(t)
	store := repos.NewStoreRepo(db)

	b, err := ingest.Read(fixture.Sources())
	require.NoError(t, err)
	b.Listings = b.Listings[:2]
	b.Claims = nil
	require.NoError(t, store.Replace(b))

	counts, err := store.Counts()
	require.NoError(t, err)
	assert.Equal(t, 2, counts[ingest.Listings])
	assert.Equal(t, 0, counts[ingest.Claims])
}

func TestReplaceKeepsRepeatedKeys(t *testing.T) {
	db := fixture.Open(t)
	store := repos.NewStoreRepo(db)

	src := fixture.Sources()
	src[ingest.Receivers] = "Receiver_ID,Name,City,Contact\n" +
		"1,Food Bank,Springfield,555-0201\n" +
		"1,Food Bank Annex,Springfield,555-0209\n"
	b, err := ingest.Read(src)
	require.NoError(t, err)
	b.Claims = append(b.Claims, b.Claims[0])
	require.NoError(t, store.Replace(b))

	tbl, err := store.Dump(ingest.Receivers)
	require.NoError(t, err)
	assert.Equal(t, []any{"Food Bank", "Food Bank Annex"}, tbl.Column("Name"))

	counts, err := store.Counts()
	require.NoError(t, err)
	assert.Equal(t, 5, counts[ingest.Claims])
}
