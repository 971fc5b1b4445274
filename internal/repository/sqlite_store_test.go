package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"esg-assistant/internal/database"
	"esg-assistant/internal/model"
	"esg-assistant/internal/repository"
)

const selectQuery = "SELECT value FROM kv WHERE key = ?"

func setupMockStore(t *testing.T) (repository.Store, sqlmock.Sqlmock) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repository.NewSQLiteStore(db, "esg-chatbot", zap.NewNop()), mockDB
}

func sampleConversations() []model.Conversation {
	created := time.Date(2025, 10, 26, 9, 30, 0, 0, time.UTC)
	imported := created.Add(time.Hour)
	return []model.Conversation{
		{
			ID:              "c2",
			Title:           "Renamed",
			TitleCustomized: true,
			Messages:        []model.Message{},
			CreatedAt:       created.Add(time.Minute),
			UpdatedAt:       created.Add(2 * time.Minute),
			ImportedAt:      &imported,
			Tags:            []string{"energy"},
		},
		{
			ID:    "c1",
			Title: "Scope 3 emissions",
			Messages: []model.Message{
				{ID: "m1", Role: model.RoleUser, Content: "Scope 3 emissions", Timestamp: created},
				{
					ID: "m2", Role: model.RoleAssistant, Content: "Line one\nLine two", Timestamp: created.Add(time.Second),
					Metadata: &model.MessageMetadata{Company: "Orange", AIUsed: true},
				},
				{ID: "m3", Role: model.RoleAssistant, Content: "Sorry", Timestamp: created.Add(2 * time.Second), IsError: true},
				{ID: "m4", Role: model.RoleSystem, Content: "Document analyzed", Timestamp: created.Add(3 * time.Second)},
			},
			CreatedAt: created,
			UpdatedAt: created.Add(3 * time.Second),
			UploadedPDFs: []model.UploadedPDF{
				{Name: "report.pdf", Pages: 12, KPIsExtracted: 3, Domains: []string{"E"}, ExtractedData: json.RawMessage(`[{"kpi":"co2"}]`), AnalyzedAt: created},
			},
		},
	}
}

func TestSQLiteStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		store, mockDB := setupMockStore(t)
		data, err := json.Marshal(sampleConversations())
		require.NoError(t, err)

		mockDB.ExpectQuery(regexp.QuoteMeta(selectQuery)).
			WithArgs("esg-chatbot-conversations").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(string(data)))

		got := store.Load(ctx)
		assert.Equal(t, sampleConversations(), got)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Absent key yields empty collection", func(t *testing.T) {
		store, mockDB := setupMockStore(t)
		mockDB.ExpectQuery(regexp.QuoteMeta(selectQuery)).
			WithArgs("esg-chatbot-conversations").
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		got := store.Load(ctx)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Malformed data is treated as absent", func(t *testing.T) {
		store, mockDB := setupMockStore(t)
		mockDB.ExpectQuery(regexp.QuoteMeta(selectQuery)).
			WithArgs("esg-chatbot-conversations").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{not json`))

		assert.Empty(t, store.Load(ctx))
	})

	t.Run("Database error is treated as absent", func(t *testing.T) {
		store, mockDB := setupMockStore(t)
		mockDB.ExpectQuery(regexp.QuoteMeta(selectQuery)).WillReturnError(errors.New("disk I/O error"))

		assert.Empty(t, store.Load(ctx))
	})
}

func TestSQLiteStore_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		store, mockDB := setupMockStore(t)
		mockDB.ExpectExec("INSERT INTO kv").
			WithArgs("esg-chatbot-conversations", "[]", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, store.Save(ctx, nil))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Failure propagates", func(t *testing.T) {
		store, mockDB := setupMockStore(t)
		mockDB.ExpectExec("INSERT INTO kv").WillReturnError(errors.New("database is locked"))

		assert.Error(t, store.Save(ctx, sampleConversations()))
	})
}

func TestSQLiteStore_Preferences(t *testing.T) {
	ctx := context.Background()
	store, mockDB := setupMockStore(t)

	mockDB.ExpectExec("INSERT INTO kv").
		WithArgs("esg-chatbot-theme", "dark", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mockDB.ExpectQuery(regexp.QuoteMeta(selectQuery)).
		WithArgs("esg-chatbot-theme").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("dark"))
	mockDB.ExpectQuery(regexp.QuoteMeta(selectQuery)).
		WithArgs("esg-chatbot-current").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	require.NoError(t, store.SavePreference(ctx, repository.PrefTheme, "dark"))

	theme, ok := store.LoadPreference(ctx, repository.PrefTheme)
	assert.True(t, ok)
	assert.Equal(t, "dark", theme)

	_, ok = store.LoadPreference(ctx, repository.PrefCurrent)
	assert.False(t, ok)

	assert.NoError(t, mockDB.ExpectationsWereMet())
}

// TestSQLiteStore_RoundTrip runs against a real database file.
func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db, err := database.InitDB(filepath.Join(t.TempDir(), "esg.db"), zap.NewNop())
	require.NoError(t, err)
	defer func() { require.NoError(t, db.Close()) }()

	store := repository.NewSQLiteStore(db, "esg-chatbot", zap.NewNop())
	assert.Empty(t, store.Load(ctx))

	want := sampleConversations()
	require.NoError(t, store.Save(ctx, want))
	assert.Equal(t, want, store.Load(ctx))

	// A second save overwrites the whole collection.
	require.NoError(t, store.Save(ctx, want[:1]))
	assert.Equal(t, want[:1], store.Load(ctx))
}
