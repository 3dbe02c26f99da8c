package leavetype_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"leavehub/internal/leavetype"
	leavetypeerrors "leavehub/internal/leavetype/errors"
)

type fakeRepository struct {
	createFn  func(ctx context.Context, lt *leavetype.LeaveType) error
	findAllFn func(ctx context.Context) ([]leavetype.LeaveType, error)
}

func (f *fakeRepository) WithTx(tx *gorm.DB) leavetype.Repository { return f }

func (f *fakeRepository) Create(ctx context.Context, lt *leavetype.LeaveType) error {
	if f.createFn != nil {
		return f.createFn(ctx, lt)
	}
	return nil
}

func (f *fakeRepository) FindAll(ctx context.Context) ([]leavetype.LeaveType, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id string) (*leavetype.LeaveType, error) {
	return nil, gorm.ErrRecordNotFound
}

func TestLeaveTypeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakeRepository{
			createFn: func(ctx context.Context, lt *leavetype.LeaveType) error {
				assert.Equal(t, "ANNUAL", lt.Name)
				assert.Equal(t, 20, lt.DefaultQuota)
				return nil
			},
		}
		svc := leavetype.NewService(repo)

		resp, err := svc.Create(ctx, leavetype.CreateLeaveTypeRequest{Name: "ANNUAL", DefaultQuota: 20})
		assert.NoError(t, err)
		assert.Equal(t, "ANNUAL", resp.Name)
		assert.NotEmpty(t, resp.ID)
	})

	t.Run("negative duplicate name", func(t *testing.T) {
		repo := &fakeRepository{
			createFn: func(ctx context.Context, lt *leavetype.LeaveType) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "uq_leave_types_name"}
			},
		}
		svc := leavetype.NewService(repo)

		_, err := svc.Create(ctx, leavetype.CreateLeaveTypeRequest{Name: "ANNUAL", DefaultQuota: 20})
		assert.ErrorIs(t, err, leavetypeerrors.ErrLeaveTypeAlreadyExists)
	})
}

func TestLeaveTypeService_GetAll(t *testing.T) {
	repo := &fakeRepository{
		findAllFn: func(ctx context.Context) ([]leavetype.LeaveType, error) {
			return []leavetype.LeaveType{
				{ID: uuid.New(), Name: "ANNUAL", DefaultQuota: 20},
				{ID: uuid.New(), Name: "SICK", DefaultQuota: 10},
			}, nil
		},
	}
	svc := leavetype.NewService(repo)

	resp, err := svc.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "ANNUAL", resp[0].Name)
	assert.Equal(t, 10, resp[1].DefaultQuota)
}
