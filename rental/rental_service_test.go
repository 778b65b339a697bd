package rental_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/playday-app/playday-backend/field"
	"github.com/playday-app/playday-backend/payment"
	rt "github.com/playday-app/playday-backend/rental"
	rt_mocks "github.com/playday-app/playday-backend/rental/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	repo    *rt_mocks.MockRentalRepository
	fields  *rt_mocks.MockFieldCatalog
	gateway *rt_mocks.MockPaymentGateway
	service *rt.Service
	ctx     context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := rt_mocks.NewMockRentalRepository(ctrl)
	fields := rt_mocks.NewMockFieldCatalog(ctrl)
	gateway := rt_mocks.NewMockPaymentGateway(ctrl)
	svc := rt.NewService(repo, fields, gateway)

	return ctrl, testDeps{
		repo: repo, fields: fields, gateway: gateway, service: svc, ctx: context.Background(),
	}
}

var (
	testField = field.Field{ID: "f-1", FieldName: "Arena One", Location: "Zurich", Price: 10}
	testStart = time.Date(2026, time.June, 1, 18, 0, 0, 0, time.UTC)
)

func validCard() payment.Card {
	return payment.Card{Name: "John Doe", Number: "9012243456789012", Expiry: "12/27", CVC: "123"}
}

func TestQuote(t *testing.T) {

	t.Run("whole hours", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.fields.EXPECT().GetByName(deps.ctx, "Arena One").Return(testField, nil).Times(1)

		quote, err := deps.service.Quote(deps.ctx, "Arena One", testStart, testStart.Add(3*time.Hour))

		require.Nil(t, err)
		require.Equal(t, 3, quote.Hours)
		require.Equal(t, 30.0, quote.PriceToPay)
		require.Equal(t, "Arena One", quote.FieldName)
		require.Equal(t, "Zurich", quote.Location)
	})

	t.Run("partial hour rounds up", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.fields.EXPECT().GetByName(deps.ctx, "Arena One").Return(testField, nil).Times(1)

		quote, err := deps.service.Quote(deps.ctx, "Arena One", testStart, testStart.Add(90*time.Minute))

		require.Nil(t, err)
		require.Equal(t, 2, quote.Hours)
		require.Equal(t, 20.0, quote.PriceToPay)
	})

	t.Run("unknown field", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.fields.EXPECT().GetByName(deps.ctx, "Nowhere").Return(field.Field{}, field.ErrFieldNotFound).Times(1)

		_, err := deps.service.Quote(deps.ctx, "Nowhere", testStart, testStart.Add(time.Hour))

		require.ErrorIs(t, err, field.ErrFieldNotFound)
	})

	t.Run("end before start", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.fields.EXPECT().GetByName(deps.ctx, "Arena One").Return(testField, nil).Times(1)

		_, err := deps.service.Quote(deps.ctx, "Arena One", testStart, testStart.Add(-time.Hour))

		require.ErrorIs(t, err, rt.ErrInvalidTimeRange)
	})

	t.Run("zero span", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.fields.EXPECT().GetByName(deps.ctx, "Arena One").Return(testField, nil).Times(1)

		_, err := deps.service.Quote(deps.ctx, "Arena One", testStart, testStart)

		require.ErrorIs(t, err, rt.ErrInvalidTimeRange)
	})
}

func TestCreate(t *testing.T) {
	quote := rt.Quote{
		FieldName:  "Arena One",
		Location:   "Zurich",
		PriceToPay: 30,
		StartDate:  testStart,
		EndDate:    testStart.Add(3 * time.Hour),
		Hours:      3,
	}

	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		inserted := rt.Rental{
			ID:         "r-1",
			FieldName:  quote.FieldName,
			Location:   quote.Location,
			PriceToPay: quote.PriceToPay,
			StartDate:  quote.StartDate,
			EndDate:    quote.EndDate,
			Hours:      quote.Hours,
			Owner:      "a@x.com",
		}

		deps.fields.EXPECT().GetByName(deps.ctx, "Arena One").Return(testField, nil).Times(1)
		deps.gateway.EXPECT().Charge(deps.ctx, validCard(), 30.0).Return(nil).Times(1)
		deps.repo.EXPECT().Insert(deps.ctx, gomock.Any()).Return(inserted, nil).Times(1)

		rental, err := deps.service.Create(deps.ctx, "a@x.com", &quote, validCard())

		require.Nil(t, err)
		require.Equal(t, inserted, rental)
	})

	t.Run("tampered quote price is recomputed from the catalog", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		tampered := quote
		tampered.PriceToPay = 0.01

		deps.fields.EXPECT().GetByName(deps.ctx, "Arena One").Return(testField, nil).Times(1)
		deps.gateway.EXPECT().Charge(deps.ctx, validCard(), 30.0).Return(nil).Times(1)
		deps.repo.EXPECT().Insert(deps.ctx, rt.Rental{
			FieldName:  "Arena One",
			Location:   "Zurich",
			PriceToPay: 30,
			StartDate:  tampered.StartDate,
			EndDate:    tampered.EndDate,
			Hours:      3,
			Owner:      "a@x.com",
		}).Return(rt.Rental{}, nil).Times(1)

		_, err := deps.service.Create(deps.ctx, "a@x.com", &tampered, validCard())

		require.Nil(t, err)
	})

	t.Run("unknown field", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		gone := quote
		gone.FieldName = "Nowhere"

		deps.fields.EXPECT().GetByName(deps.ctx, "Nowhere").Return(field.Field{}, field.ErrFieldNotFound).Times(1)
		deps.gateway.EXPECT().Charge(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		deps.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Create(deps.ctx, "a@x.com", &gone, validCard())

		require.ErrorIs(t, err, field.ErrFieldNotFound)
	})

	t.Run("missing quote", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.gateway.EXPECT().Charge(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		deps.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Create(deps.ctx, "a@x.com", nil, validCard())

		require.ErrorIs(t, err, rt.ErrMissingQuote)
	})

	t.Run("tampered quote hours", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		tampered := quote
		tampered.Hours = 1

		deps.gateway.EXPECT().Charge(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		deps.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Create(deps.ctx, "a@x.com", &tampered, validCard())

		require.ErrorIs(t, err, rt.ErrInvalidTimeRange)
	})

	t.Run("rejected card writes nothing", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.fields.EXPECT().GetByName(deps.ctx, "Arena One").Return(testField, nil).Times(1)
		deps.gateway.EXPECT().Charge(deps.ctx, gomock.Any(), 30.0).Return(payment.ErrInvalidCard).Times(1)
		deps.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Create(deps.ctx, "a@x.com", &quote, validCard())

		require.ErrorIs(t, err, payment.ErrInvalidCard)
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.fields.EXPECT().GetByName(deps.ctx, "Arena One").Return(testField, nil).Times(1)
		deps.gateway.EXPECT().Charge(deps.ctx, gomock.Any(), 30.0).Return(nil).Times(1)
		deps.repo.EXPECT().Insert(deps.ctx, gomock.Any()).Return(rt.Rental{}, errors.New("repo error")).Times(1)

		_, err := deps.service.Create(deps.ctx, "a@x.com", &quote, validCard())

		require.Error(t, err)
	})
}

func TestListByOwner(t *testing.T) {

	t.Run("orders upcoming first", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		now := time.Now()
		past := rt.Rental{ID: "past", StartDate: now.Add(-24 * time.Hour), Owner: "a@x.com"}
		soon := rt.Rental{ID: "soon", StartDate: now.Add(time.Hour), Owner: "a@x.com"}
		later := rt.Rental{ID: "later", StartDate: now.Add(48 * time.Hour), Owner: "a@x.com"}

		deps.repo.EXPECT().ListByOwner(deps.ctx, "a@x.com").Return([]rt.Rental{later, past, soon}, nil).Times(1)

		rentals, err := deps.service.ListByOwner(deps.ctx, "a@x.com")

		require.Nil(t, err)
		require.Equal(t, []string{"soon", "later", "past"}, []string{rentals[0].ID, rentals[1].ID, rentals[2].ID})
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().ListByOwner(deps.ctx, "a@x.com").Return(nil, errors.New("repo error")).Times(1)

		rentals, err := deps.service.ListByOwner(deps.ctx, "a@x.com")

		require.Error(t, err)
		require.Equal(t, 0, len(rentals))
	})
}

func TestComputeHours(t *testing.T) {
	require.Equal(t, 0, rt.ComputeHours(testStart, testStart))
	require.Equal(t, 0, rt.ComputeHours(testStart, testStart.Add(-time.Hour)))
	require.Equal(t, 1, rt.ComputeHours(testStart, testStart.Add(time.Hour)))
	require.Equal(t, 1, rt.ComputeHours(testStart, testStart.Add(30*time.Minute)))
	require.Equal(t, 3, rt.ComputeHours(testStart, testStart.Add(3*time.Hour)))
	require.Equal(t, 4, rt.ComputeHours(testStart, testStart.Add(3*time.Hour+time.Minute)))
}
