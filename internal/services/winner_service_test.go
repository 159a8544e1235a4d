package services

import (
	"context"
	"testing"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/repositories"
	"github.com/ArowuTest/raffle-backend/internal/repositories/memory"
	repomocks "github.com/ArowuTest/raffle-backend/internal/repositories/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWinnerService_StatusRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := memory.NewStore()
	ctx := context.Background()

	entrant := &models.Entrant{ID: "e1", DisplayName: "Ana", NationalID: "11111111111", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	original := models.NewWinner(entrant, "w1", "d1", entrant.CreatedAt.Add(time.Hour))
	require.NoError(t, store.Winners().Create(ctx, original))

	svc := NewWinnerService(store.Winners(), tickingClock(ctrl, original.WonAt), nil, 0)

	paid, err := svc.SetStatus(ctx, "w1", models.PayoutStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, models.PayoutStatusPaid, paid.Status)

	again, err := svc.SetStatus(ctx, "w1", models.PayoutStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, models.PayoutStatusPaid, again.Status)

	back, err := svc.SetStatus(ctx, "w1", models.PayoutStatusPending)
	require.NoError(t, err)
	assert.Equal(t, original.Status, back.Status)
	assert.Equal(t, original.EntrantID, back.EntrantID)
	assert.Equal(t, original.DrawID, back.DrawID)
	assert.Equal(t, original.DisplayName, back.DisplayName)
	assert.Equal(t, original.NationalID, back.NationalID)
	assert.Equal(t, original.WonAt, back.WonAt)
	assert.Equal(t, original.RegisteredAt, back.RegisteredAt)
}

func TestWinnerService_SetStatusErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockWinnerRepository(ctrl)
	svc := NewWinnerService(repo, tickingClock(ctrl, time.Now()), nil, 0)

	_, err := svc.SetStatus(context.Background(), "w1", "Pix Enviado")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "status")

	repo.EXPECT().UpdateStatus(gomock.Any(), "missing", models.PayoutStatusPaid, gomock.Any()).Return(nil, repositories.ErrNotFound)
	_, err = svc.SetStatus(context.Background(), "missing", models.PayoutStatusPaid)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWinnerService_ListLimits(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockWinnerRepository(ctrl)
	svc := NewWinnerService(repo, tickingClock(ctrl, time.Now()), nil, 0)

	repo.EXPECT().FindAll(gomock.Any(), DefaultWinnersPageSize).Return([]*models.Winner{}, nil)
	repo.EXPECT().FindAll(gomock.Any(), 0).Return([]*models.Winner{}, nil)
	repo.EXPECT().FindAll(gomock.Any(), 5).Return([]*models.Winner{}, nil)

	_, err := svc.List(context.Background(), -1)
	require.NoError(t, err)
	_, err = svc.List(context.Background(), 0)
	require.NoError(t, err)
	_, err = svc.List(context.Background(), 5)
	require.NoError(t, err)
}

func TestWinnerService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockWinnerRepository(ctrl)
	svc := NewWinnerService(repo, tickingClock(ctrl, time.Now()), nil, 10)

	repo.EXPECT().FindByID(gomock.Any(), "w1").Return(&models.Winner{ID: "w1"}, nil)
	repo.EXPECT().FindByID(gomock.Any(), "w2").Return(nil, repositories.ErrNotFound)

	w, err := svc.Get(context.Background(), "w1")
	require.NoError(t, err)
	assert.Equal(t, "w1", w.ID)

	_, err = svc.Get(context.Background(), "w2")
	assert.ErrorIs(t, err, ErrNotFound)
}
