package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletwise/backend/internal/application/event"
	"github.com/walletwise/backend/internal/application/usecase/analytics"
	"github.com/walletwise/backend/internal/domain/entity"
	domainerror "github.com/walletwise/backend/internal/domain/error"
)

type fakeTransactionRepo struct {
	stored map[uuid.UUID]*entity.Transaction
	err    error
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{stored: make(map[uuid.UUID]*entity.Transaction)}
}

func (f *fakeTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	if f.err != nil {
		return f.err
	}
	f.stored[transaction.ID] = transaction
	return nil
}

func (f *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return f.stored[id], nil
}

func (f *fakeTransactionRepo) FindByUserAndRange(_ context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.TransactionWithCategory, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.TransactionWithCategory
	for _, tx := range f.stored {
		if tx.UserID == userID && !tx.Date.Before(start) && !tx.Date.After(end) {
			out = append(out, &entity.TransactionWithCategory{Transaction: tx})
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) FindRecentByUser(_ context.Context, userID uuid.UUID, limit int) ([]*entity.TransactionWithCategory, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.TransactionWithCategory
	for _, tx := range f.stored {
		if tx.UserID == userID && len(out) < limit {
			out = append(out, &entity.TransactionWithCategory{Transaction: tx})
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID, userID uuid.UUID) error {
	tx, ok := f.stored[id]
	if !ok || tx.UserID != userID {
		return domainerror.ErrTransactionNotFound
	}
	delete(f.stored, id)
	return nil
}

type fakeCategoryRepo struct {
	byName map[string]*entity.Category
	err    error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{byName: make(map[string]*entity.Category)}
}

func (f *fakeCategoryRepo) Create(context.Context, *entity.Category) error { return nil }
func (f *fakeCategoryRepo) FindByID(context.Context, uuid.UUID) (*entity.Category, error) {
	return nil, nil
}
func (f *fakeCategoryRepo) FindByUser(context.Context, uuid.UUID) ([]*entity.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepo) FindOrCreateByName(_ context.Context, userID uuid.UUID, name string) (*entity.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	if existing, ok := f.byName[name]; ok {
		return existing, nil
	}
	category := &entity.Category{ID: uuid.New(), UserID: userID, Name: name}
	f.byName[name] = category
	return category, nil
}

func (f *fakeCategoryRepo) ExistsByName(_ context.Context, _ uuid.UUID, name string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.byName[name]
	return ok, nil
}

func (f *fakeCategoryRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type recordingPublisher struct {
	events []event.Event
}

func (r *recordingPublisher) Publish(ev event.Event) {
	r.events = append(r.events, ev)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCreateTransaction_ResolvesCategoryByName(t *testing.T) {
	repo := newFakeTransactionRepo()
	categories := newFakeCategoryRepo()
	publisher := &recordingPublisher{}
	uc := NewCreateTransactionUseCase(repo, categories, publisher)
	userID := uuid.New()

	output, err := uc.Execute(context.Background(), CreateTransactionInput{
		UserID:       userID,
		CategoryName: "Groceries",
		Amount:       dec("42.50"),
		Date:         time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Note:         "weekly shop",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Category == nil || output.Category.Name != "Groceries" {
		t.Fatalf("category = %+v, want Groceries", output.Category)
	}
	if output.Transaction.CategoryID == nil || *output.Transaction.CategoryID != output.Category.ID {
		t.Error("transaction must link the resolved category")
	}
	if len(publisher.events) != 1 || publisher.events[0].Type != event.TransactionAdded {
		t.Errorf("events = %v, want one transaction_added", publisher.events)
	}

	// Same name resolves to the same category on the next spend.
	second, err := uc.Execute(context.Background(), CreateTransactionInput{
		UserID:       userID,
		CategoryName: "Groceries",
		Amount:       dec("10"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *second.Transaction.CategoryID != *output.Transaction.CategoryID {
		t.Error("repeated category name must reuse the existing category")
	}
}

func TestCreateTransaction_UncategorizedHasNilCategory(t *testing.T) {
	uc := NewCreateTransactionUseCase(newFakeTransactionRepo(), newFakeCategoryRepo(), &recordingPublisher{})

	output, err := uc.Execute(context.Background(), CreateTransactionInput{
		UserID: uuid.New(),
		Amount: dec("5"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Transaction.CategoryID != nil {
		t.Error("uncategorized spend must keep a nil category link")
	}
	if output.Transaction.Date.IsZero() {
		t.Error("zero date must default to now")
	}
}

func TestCreateTransaction_Validation(t *testing.T) {
	uc := NewCreateTransactionUseCase(newFakeTransactionRepo(), newFakeCategoryRepo(), &recordingPublisher{})

	tests := []struct {
		name         string
		input        CreateTransactionInput
		expectedCode domainerror.TransactionErrorCode
	}{
		{"zero amount", CreateTransactionInput{Amount: dec("0")}, domainerror.ErrCodeInvalidAmount},
		{"negative amount", CreateTransactionInput{Amount: dec("-3")}, domainerror.ErrCodeInvalidAmount},
		{
			"note too long",
			CreateTransactionInput{Amount: dec("1"), Note: string(make([]byte, maxNoteLength+1))},
			domainerror.ErrCodeNoteTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.UserID = uuid.New()
			_, err := uc.Execute(context.Background(), tt.input)

			var txErr *domainerror.TransactionError
			if !errors.As(err, &txErr) {
				t.Fatalf("expected TransactionError, got %v", err)
			}
			if txErr.Code != tt.expectedCode {
				t.Errorf("code = %s, want %s", txErr.Code, tt.expectedCode)
			}
		})
	}
}

func TestDeleteTransaction(t *testing.T) {
	repo := newFakeTransactionRepo()
	publisher := &recordingPublisher{}
	userID := uuid.New()
	tx := entity.NewTransaction(userID, nil, nil, dec("10"), time.Now(), "")
	repo.stored[tx.ID] = tx

	uc := NewDeleteTransactionUseCase(repo, publisher)

	if err := uc.Execute(context.Background(), DeleteTransactionInput{UserID: userID, TransactionID: tx.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(publisher.events) != 1 || publisher.events[0].Type != event.TransactionDeleted {
		t.Errorf("events = %v, want one transaction_deleted", publisher.events)
	}

	// Deleting another user's transaction reports not-found.
	other := entity.NewTransaction(uuid.New(), nil, nil, dec("10"), time.Now(), "")
	repo.stored[other.ID] = other

	err := uc.Execute(context.Background(), DeleteTransactionInput{UserID: userID, TransactionID: other.ID})
	var txErr *domainerror.TransactionError
	if !errors.As(err, &txErr) || txErr.Code != domainerror.ErrCodeTransactionNotFound {
		t.Fatalf("expected transaction-not-found, got %v", err)
	}
}

func TestListTransactions_DefaultLimit(t *testing.T) {
	repo := newFakeTransactionRepo()
	userID := uuid.New()
	for i := 0; i < 3; i++ {
		tx := entity.NewTransaction(userID, nil, nil, dec("1"), time.Now(), "")
		repo.stored[tx.ID] = tx
	}

	uc := NewListTransactionsUseCase(repo)
	output, err := uc.Execute(context.Background(), ListTransactionsInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Transactions) != 3 {
		t.Errorf("got %d transactions, want 3", len(output.Transactions))
	}
}

func TestListTransactions_PeriodScoped(t *testing.T) {
	repo := newFakeTransactionRepo()
	userID := uuid.New()
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	inside := entity.NewTransaction(userID, nil, nil, dec("10"), now.AddDate(0, 0, -3), "groceries")
	outside := entity.NewTransaction(userID, nil, nil, dec("20"), now.AddDate(0, -2, 0), "old")
	repo.stored[inside.ID] = inside
	repo.stored[outside.ID] = outside

	uc := NewListTransactionsUseCase(repo)
	uc.now = func() time.Time { return now }

	output, err := uc.Execute(context.Background(), ListTransactionsInput{
		UserID: userID,
		Period: analytics.PeriodCurrent,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(output.Transactions))
	}
	if output.Transactions[0].Transaction.ID != inside.ID {
		t.Errorf("got transaction %s, want %s", output.Transactions[0].Transaction.ID, inside.ID)
	}
}
