package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnassignOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := newPendingOrder(t)
	testPartner := newAvailablePartnerAt(t, "ravi", 77.60, 12.97)
	require.NoError(t, testPartner.TakeOrder(testOrder.ID()))
	require.NoError(t, testOrder.Assign(testPartner.ID()))

	cmd, err := commands.NewUnassignOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		partnerRepo.On("Get", ctx, testPartner.ID()).Return(testPartner, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		partnerRepo.On("Update", ctx, mock.AnythingOfType("*partner.Partner")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUnassignOrderCommandHandler(factory)
	releasedPartnerID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, releasedPartnerID.IsEqual(testPartner.ID()))
	assert.Equal(t, order.Pending, testOrder.Status())
	assert.Nil(t, testOrder.Partner())
	assert.Equal(t, partner.Available, testPartner.Status())
	assert.Empty(t, testPartner.AssignedOrders())
	orderRepo.AssertExpectations(t)
	partnerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUnassignOrderCommandHandler_Handle_OrderNotAssigned(t *testing.T) {
	ctx := t.Context()

	testOrder := newPendingOrder(t)
	cmd, err := commands.NewUnassignOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUnassignOrderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrOrderIsNotAssigned)
}

func TestUnassignOrderCommandHandler_Handle_PartnerRecordGone(t *testing.T) {
	ctx := t.Context()

	testOrder := newPendingOrder(t)
	ghost := newAvailablePartnerAt(t, "ghost", 77.60, 12.97)
	require.NoError(t, testOrder.Assign(ghost.ID()))

	cmd, err := commands.NewUnassignOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		partnerRepo.On("Get", ctx, ghost.ID()).
			Return(nil, errs.NewObjectNotFoundError("partner", ghost.ID())).
			Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUnassignOrderCommandHandler(factory)
	releasedPartnerID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, releasedPartnerID.IsEqual(ghost.ID()))
	assert.Equal(t, order.Pending, testOrder.Status())
	assert.Nil(t, testOrder.Partner())
	partnerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
