package feedback

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func TestSave(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO response_feedback").
		WithArgs(sqlmock.AnyArg(), "conv_gail", 4, "solid reply", "Hello Gail!", false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := NewStore(db)
	saved, err := store.Save(context.Background(), Feedback{
		ConversationID:  "conv_gail",
		Rating:          4,
		Comments:        "solid reply",
		ResponseContent: "Hello Gail!",
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if saved.ID == "" {
		t.Error("expected generated ID")
	}
	if saved.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be filled")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSave_RejectsOutOfRangeRating(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	store := NewStore(db)
	for _, rating := range []int{0, 6, -1} {
		if _, err := store.Save(context.Background(), Feedback{Rating: rating}); err == nil {
			t.Errorf("rating %d: expected validation error", rating)
		}
	}
}

func TestRecent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "conversation_id", "rating", "comments", "response_content", "processed", "created_at"}).
		AddRow("feedback_b", "conv_gail", 5, "", "reply b", false, now).
		AddRow("feedback_a", nil, 2, "too vague", "reply a", true, now.Add(-time.Hour))

	mock.ExpectQuery("SELECT id, conversation_id, rating").
		WithArgs(10).
		WillReturnRows(rows)

	store := NewStore(db)
	got, err := store.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].ID != "feedback_b" || got[0].Rating != 5 {
		t.Errorf("unexpected first record %+v", got[0])
	}
	if got[1].ConversationID != "" {
		t.Errorf("expected empty conversation ID for NULL, got %q", got[1].ConversationID)
	}
}

func TestAverageRating(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT AVG\\(rating\\) FROM response_feedback").
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(3.5))

	store := NewStore(db)
	avg, err := store.AverageRating(context.Background())
	if err != nil {
		t.Fatalf("AverageRating failed: %v", err)
	}
	if avg != 3.5 {
		t.Errorf("expected 3.5, got %v", avg)
	}
}

func TestAverageRating_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT AVG\\(rating\\) FROM response_feedback").
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(nil))

	store := NewStore(db)
	avg, err := store.AverageRating(context.Background())
	if err != nil {
		t.Fatalf("AverageRating failed: %v", err)
	}
	if avg != 0 {
		t.Errorf("expected 0 for empty table, got %v", avg)
	}
}

func TestMarkProcessed_Unknown(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE response_feedback SET processed").
		WithArgs("feedback_missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	store := NewStore(db)
	if err := store.MarkProcessed(context.Background(), "feedback_missing"); err == nil {
		t.Error("expected error for unknown id")
	}
}
