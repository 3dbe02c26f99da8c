package holiday_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"leavehub/internal/holiday"
	holidayerrors "leavehub/internal/holiday/errors"
)

type fakeRepository struct {
	createFn  func(ctx context.Context, h *holiday.CorporateHoliday) error
	findAllFn func(ctx context.Context) ([]holiday.CorporateHoliday, error)
}

func (f *fakeRepository) WithTx(tx *gorm.DB) holiday.Repository { return f }

func (f *fakeRepository) Create(ctx context.Context, h *holiday.CorporateHoliday) error {
	if f.createFn != nil {
		return f.createFn(ctx, h)
	}
	return nil
}

func (f *fakeRepository) FindAll(ctx context.Context) ([]holiday.CorporateHoliday, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeRepository) FindInRange(ctx context.Context, start, end time.Time) ([]holiday.CorporateHoliday, error) {
	return nil, nil
}

func TestHolidayService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakeRepository{
			createFn: func(ctx context.Context, h *holiday.CorporateHoliday) error {
				assert.Equal(t, "2026-12-25", h.Date.Format("2006-01-02"))
				return nil
			},
		}
		svc := holiday.NewService(repo)

		resp, err := svc.Create(ctx, holiday.CreateHolidayRequest{Date: "2026-12-25", Description: "Christmas"})
		assert.NoError(t, err)
		assert.Equal(t, "2026-12-25", resp.Date)
		assert.Equal(t, "Christmas", resp.Description)
	})

	t.Run("negative malformed date", func(t *testing.T) {
		svc := holiday.NewService(&fakeRepository{})

		_, err := svc.Create(ctx, holiday.CreateHolidayRequest{Date: "25/12/2026", Description: "Christmas"})
		assert.ErrorIs(t, err, holidayerrors.ErrInvalidDateFormat)
	})

	t.Run("negative duplicate date", func(t *testing.T) {
		repo := &fakeRepository{
			createFn: func(ctx context.Context, h *holiday.CorporateHoliday) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "uq_corporate_holidays_date"}
			},
		}
		svc := holiday.NewService(repo)

		_, err := svc.Create(ctx, holiday.CreateHolidayRequest{Date: "2026-12-25", Description: "Christmas"})
		assert.ErrorIs(t, err, holidayerrors.ErrHolidayAlreadyExists)
	})
}

func TestHolidayService_GetAll(t *testing.T) {
	repo := &fakeRepository{
		findAllFn: func(ctx context.Context) ([]holiday.CorporateHoliday, error) {
			return []holiday.CorporateHoliday{
				{ID: uuid.New(), Date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), Description: "New Year"},
			}, nil
		},
	}
	svc := holiday.NewService(repo)

	resp, err := svc.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "2026-01-01", resp[0].Date)
}
