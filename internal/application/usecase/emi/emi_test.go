package emi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/walletwise/backend/internal/application/event"
	"github.com/walletwise/backend/internal/domain/entity"
	domainerror "github.com/walletwise/backend/internal/domain/error"
	"github.com/walletwise/backend/internal/integration/persistence"
	"github.com/walletwise/backend/internal/integration/persistence/model"
)

type fakeEMIRepo struct {
	stored map[uuid.UUID]*entity.EMI
	err    error
}

func newFakeEMIRepo() *fakeEMIRepo {
	return &fakeEMIRepo{stored: make(map[uuid.UUID]*entity.EMI)}
}

func (f *fakeEMIRepo) Create(_ context.Context, emi *entity.EMI) error {
	if f.err != nil {
		return f.err
	}
	f.stored[emi.ID] = emi
	return nil
}

func (f *fakeEMIRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.EMI, error) {
	if f.err != nil {
		return nil, f.err
	}
	emi, ok := f.stored[id]
	if !ok {
		// Same contract as the gorm repository: missing rows surface
		// as the bare sentinel, never as (nil, nil).
		return nil, domainerror.ErrEMINotFound
	}
	return emi, nil
}

func (f *fakeEMIRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.EMI, error) {
	var out []*entity.EMI
	for _, e := range f.stored {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, f.err
}

func (f *fakeEMIRepo) CountOpenByUser(_ context.Context, userID uuid.UUID) (int, error) {
	count := 0
	for _, e := range f.stored {
		if e.UserID == userID && e.IsOpen() {
			count++
		}
	}
	return count, f.err
}

func (f *fakeEMIRepo) Update(_ context.Context, emi *entity.EMI) error {
	if f.err != nil {
		return f.err
	}
	f.stored[emi.ID] = emi
	return nil
}

func (f *fakeEMIRepo) Delete(_ context.Context, id uuid.UUID, userID uuid.UUID) error {
	e, ok := f.stored[id]
	if !ok || e.UserID != userID {
		return domainerror.ErrEMINotFound
	}
	delete(f.stored, id)
	return nil
}

type recordingPublisher struct {
	events []event.Event
}

func (r *recordingPublisher) Publish(ev event.Event) {
	r.events = append(r.events, ev)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCreateEMI(t *testing.T) {
	repo := newFakeEMIRepo()
	publisher := &recordingPublisher{}
	uc := NewCreateEMIUseCase(repo, publisher)

	output, err := uc.Execute(context.Background(), CreateEMIInput{
		UserID:        uuid.New(),
		Lender:        "Auto Loan Co",
		MonthlyAmount: dec("320"),
		TotalMonths:   24,
		NextDueDate:   time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.EMI.RemainingMonths != 24 {
		t.Errorf("remaining months = %d, want all installments outstanding", output.EMI.RemainingMonths)
	}
	if !output.EMI.IsOpen() {
		t.Error("new EMI must be open")
	}
	if len(publisher.events) != 1 || publisher.events[0].Type != event.EMIChanged {
		t.Errorf("events = %v, want one emi_changed", publisher.events)
	}
}

func TestCreateEMI_Validation(t *testing.T) {
	uc := NewCreateEMIUseCase(newFakeEMIRepo(), &recordingPublisher{})

	tests := []struct {
		name         string
		input        CreateEMIInput
		expectedCode domainerror.EMIErrorCode
	}{
		{"zero months", CreateEMIInput{MonthlyAmount: dec("100"), TotalMonths: 0}, domainerror.ErrCodeInvalidMonths},
		{"zero amount", CreateEMIInput{MonthlyAmount: dec("0"), TotalMonths: 12}, domainerror.ErrCodeInvalidMonthlyAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.UserID = uuid.New()
			_, err := uc.Execute(context.Background(), tt.input)

			var emiErr *domainerror.EMIError
			if !errors.As(err, &emiErr) {
				t.Fatalf("expected EMIError, got %v", err)
			}
			if emiErr.Code != tt.expectedCode {
				t.Errorf("code = %s, want %s", emiErr.Code, tt.expectedCode)
			}
		})
	}
}

func TestRecordPayment(t *testing.T) {
	repo := newFakeEMIRepo()
	publisher := &recordingPublisher{}
	userID := uuid.New()
	due := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	emi := entity.NewEMI(userID, "Auto Loan Co", dec("320"), 2, due)
	repo.stored[emi.ID] = emi

	uc := NewRecordPaymentUseCase(repo, publisher)

	output, err := uc.Execute(context.Background(), RecordPaymentInput{UserID: userID, EMIID: emi.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.EMI.RemainingMonths != 1 {
		t.Errorf("remaining months = %d, want 1", output.EMI.RemainingMonths)
	}
	if !output.EMI.NextDueDate.Equal(due.AddDate(0, 1, 0)) {
		t.Errorf("next due = %s, want rolled one month", output.EMI.NextDueDate)
	}

	// Second payment settles the EMI.
	output, err = uc.Execute(context.Background(), RecordPaymentInput{UserID: userID, EMIID: emi.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.EMI.RemainingMonths != 0 || output.EMI.IsOpen() {
		t.Errorf("remaining months = %d, want settled at zero", output.EMI.RemainingMonths)
	}

	// A settled EMI rejects further payments and never goes negative.
	_, err = uc.Execute(context.Background(), RecordPaymentInput{UserID: userID, EMIID: emi.ID})
	var emiErr *domainerror.EMIError
	if !errors.As(err, &emiErr) || emiErr.Code != domainerror.ErrCodeEMISettled {
		t.Fatalf("expected emi-settled, got %v", err)
	}
	if repo.stored[emi.ID].RemainingMonths != 0 {
		t.Errorf("remaining months = %d, must floor at zero", repo.stored[emi.ID].RemainingMonths)
	}

	if len(publisher.events) != 2 {
		t.Errorf("got %d events, want 2 for the two successful payments", len(publisher.events))
	}
}

func TestRecordPayment_NotOwned(t *testing.T) {
	repo := newFakeEMIRepo()
	emi := entity.NewEMI(uuid.New(), "Lender", dec("100"), 12, time.Now())
	repo.stored[emi.ID] = emi

	uc := NewRecordPaymentUseCase(repo, &recordingPublisher{})

	_, err := uc.Execute(context.Background(), RecordPaymentInput{UserID: uuid.New(), EMIID: emi.ID})
	var emiErr *domainerror.EMIError
	if !errors.As(err, &emiErr) || emiErr.Code != domainerror.ErrCodeEMINotFound {
		t.Fatalf("expected emi-not-found, got %v", err)
	}
}

func TestDeleteEMI(t *testing.T) {
	repo := newFakeEMIRepo()
	publisher := &recordingPublisher{}
	userID := uuid.New()
	emi := entity.NewEMI(userID, "Lender", dec("100"), 12, time.Now())
	repo.stored[emi.ID] = emi

	uc := NewDeleteEMIUseCase(repo, publisher)

	if err := uc.Execute(context.Background(), DeleteEMIInput{UserID: userID, EMIID: emi.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(publisher.events) != 1 || publisher.events[0].Type != event.EMIChanged {
		t.Errorf("events = %v, want one emi_changed", publisher.events)
	}
}

// The gorm repository reports a missing row with the bare sentinel, not
// (nil, nil); recording a payment against an unknown id must still map
// it to the coded not-found error so the API can answer 404.
func TestRecordPayment_MissingRowOnRealRepository(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.EMIModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	uc := NewRecordPaymentUseCase(persistence.NewEMIRepository(db), &recordingPublisher{})
	_, err = uc.Execute(context.Background(), RecordPaymentInput{
		UserID: uuid.New(),
		EMIID:  uuid.New(),
	})

	var emiErr *domainerror.EMIError
	if !errors.As(err, &emiErr) || emiErr.Code != domainerror.ErrCodeEMINotFound {
		t.Errorf("err = %v, want code %s", err, domainerror.ErrCodeEMINotFound)
	}
}
