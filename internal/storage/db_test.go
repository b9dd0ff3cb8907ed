package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var summaryRowColumns = []string{"id", "name", "skills", "filename", "email", "phone", "summary", "preview"}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})
	return NewFromConn(conn), mock
}

func TestInsertCandidate(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()

	c := &Candidate{
		Name:       "Ada",
		ResumeText: "text",
		Skills:     "python",
		Filename:   "1.pdf",
		Email:      "ada@example.com",
		Phone:      "0123456789",
		Summary:    "summary",
	}
	mock.ExpectQuery(insertCandidateSQL).
		WithArgs("Ada", "text", "python", "1.pdf", "ada@example.com", "0123456789", "summary").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), now))

	id, err := db.InsertCandidate(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, int64(42), c.ID)
	assert.Equal(t, now, c.CreatedAt)
}

func TestInsertCandidate_Error(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(insertCandidateSQL).WillReturnError(errors.New("connection refused"))

	_, err := db.InsertCandidate(context.Background(), &Candidate{})
	assert.ErrorContains(t, err, "insert candidate")
}

func TestListCandidates(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(listCandidatesSQL).WillReturnRows(
		sqlmock.NewRows(summaryRowColumns).
			AddRow(int64(2), "Bob", "sql", "2.pdf", "", "", "", "bob text").
			AddRow(int64(1), "Ada", "python", "1.pdf", "a@b.com", "", "", "ada text"),
	)

	list, err := db.ListCandidates(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ID)
	assert.Equal(t, "ada text", list[1].Preview)
	assert.Equal(t, "a@b.com", list[1].Email)
}

func TestListCandidates_EmptyIsNotNil(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(listCandidatesSQL).WillReturnRows(sqlmock.NewRows(summaryRowColumns))

	list, err := db.ListCandidates(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestSearchCandidates_EscapesPattern(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(searchCandidatesSQL).
		WithArgs(`%50\%\_off\\%`).
		WillReturnRows(sqlmock.NewRows(summaryRowColumns))

	_, err := db.SearchCandidates(context.Background(), `50%_off\`)
	require.NoError(t, err)
}

func TestSearchCandidates_EmptyQueryMatchesAll(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(searchCandidatesSQL).
		WithArgs("%%").
		WillReturnRows(sqlmock.NewRows(summaryRowColumns).AddRow(int64(1), "Ada", "", "1.pdf", "", "", "", ""))

	list, err := db.SearchCandidates(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAllCandidates(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()
	mock.ExpectQuery(allCandidatesSQL).WillReturnRows(
		sqlmock.NewRows([]string{"id", "name", "resume_text", "skills", "filename", "email", "phone", "summary", "created_at"}).
			AddRow(int64(1), "Ada", "full text", "python", "1.pdf", "", "", "", now),
	)

	all, err := db.AllCandidates(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "full text", all[0].ResumeText)
}

func TestGetCandidate(t *testing.T) {
	columns := []string{"id", "name", "resume_text", "skills", "filename", "email", "phone", "summary", "created_at", "added_at"}
	now := time.Now()

	t.Run("shortlisted", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(getCandidateSQL).WithArgs(int64(1)).WillReturnRows(
			sqlmock.NewRows(columns).AddRow(int64(1), "Ada", "text", "", "1.pdf", "", "", "", now, now),
		)

		d, err := db.GetCandidate(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, d.Shortlisted)
		require.NotNil(t, d.AddedAt)
		assert.Equal(t, "text", d.ResumeText)
		assert.Equal(t, "text", d.Preview)
	})

	t.Run("not shortlisted", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(getCandidateSQL).WithArgs(int64(1)).WillReturnRows(
			sqlmock.NewRows(columns).AddRow(int64(1), "Ada", "text", "", "1.pdf", "", "", "", now, nil),
		)

		d, err := db.GetCandidate(context.Background(), 1)
		require.NoError(t, err)
		assert.False(t, d.Shortlisted)
		assert.Nil(t, d.AddedAt)
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(getCandidateSQL).WithArgs(int64(9)).WillReturnRows(sqlmock.NewRows(columns))

		_, err := db.GetCandidate(context.Background(), 9)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteCandidate(t *testing.T) {
	t.Run("existing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(deleteShortlistEntrySQL).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(deleteCandidateSQL).WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"filename"}).AddRow("3.pdf"))
		mock.ExpectCommit()

		name, err := db.DeleteCandidate(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "3.pdf", name)
	})

	t.Run("missing is not an error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(deleteShortlistEntrySQL).WithArgs(int64(99)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(deleteCandidateSQL).WithArgs(int64(99)).WillReturnRows(sqlmock.NewRows([]string{"filename"}))
		mock.ExpectCommit()

		name, err := db.DeleteCandidate(context.Background(), 99)
		require.NoError(t, err)
		assert.Empty(t, name)
	})

	t.Run("failure rolls back", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(deleteShortlistEntrySQL).WithArgs(int64(3)).WillReturnError(errors.New("boom"))
		mock.ExpectRollback()

		_, err := db.DeleteCandidate(context.Background(), 3)
		assert.Error(t, err)
	})
}

func TestAddToShortlist(t *testing.T) {
	t.Run("insert", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(addToShortlistSQL).WithArgs(int64(5)).WillReturnResult(sqlmock.NewResult(1, 1))
		assert.NoError(t, db.AddToShortlist(context.Background(), 5))
	})

	t.Run("duplicate or unknown id inserts nothing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(addToShortlistSQL).WithArgs(int64(5)).WillReturnResult(sqlmock.NewResult(0, 0))
		assert.NoError(t, db.AddToShortlist(context.Background(), 5))
	})

	t.Run("candidate deleted concurrently", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(addToShortlistSQL).WithArgs(int64(5)).
			WillReturnError(&pq.Error{Code: pgForeignKeyViolation})
		assert.NoError(t, db.AddToShortlist(context.Background(), 5))
	})

	t.Run("other errors surface", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(addToShortlistSQL).WithArgs(int64(5)).WillReturnError(errors.New("timeout"))
		assert.ErrorContains(t, db.AddToShortlist(context.Background(), 5), "shortlist candidate 5")
	})
}

func TestListShortlist(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(listShortlistSQL).WillReturnRows(
		sqlmock.NewRows(summaryRowColumns).
			AddRow(int64(1), "Ada", "", "1.pdf", "", "", "", "").
			AddRow(int64(2), "Bob", "", "2.pdf", "", "", "", ""),
	)

	list, err := db.ListShortlist(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ada", list[0].Name)
}

func TestMigrate(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(schemaSQL).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.NoError(t, db.Migrate(context.Background()))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "plain", escapeLike("plain"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\x`, escapeLike(`c:\x`))
}
