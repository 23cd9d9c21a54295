package commands_test

import (
	"context"
	"time"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/domain/model/bill"
	"ordermanagement/internal/core/domain/model/car"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/domain/model/user"
	"ordermanagement/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	switch stored := args.Get(0).(type) {
	case func(*order.Order) *order.Order:
		return stored(o), args.Error(1)
	case *order.Order:
		return stored, args.Error(1)
	default:
		return nil, args.Error(1)
	}
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Exists(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return ordersArg(args, 0), args.Error(1)
}

func (m *MockOrderRepository) GetAllByCar(ctx context.Context, carID kernel.ID) ([]*order.Order, error) {
	args := m.Called(ctx, carID)
	return ordersArg(args, 0), args.Error(1)
}

func (m *MockOrderRepository) GetAllByUser(ctx context.Context, userID kernel.ID) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	return ordersArg(args, 0), args.Error(1)
}

func (m *MockOrderRepository) GetAllByCarEndedBefore(
	ctx context.Context, carID kernel.ID, t time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, carID, t)
	return ordersArg(args, 0), args.Error(1)
}

func (m *MockOrderRepository) LockCar(ctx context.Context, carID kernel.ID) error {
	args := m.Called(ctx, carID)
	return args.Error(0)
}

func ordersArg(args mock.Arguments, i int) []*order.Order {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).([]*order.Order)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUserClient struct{ mock.Mock }

func (m *MockUserClient) GetUser(ctx context.Context, id kernel.ID) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

type MockCarClient struct{ mock.Mock }

func (m *MockCarClient) GetCar(ctx context.Context, id kernel.ID) (car.Car, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(car.Car), args.Error(1)
}

type MockBillingClient struct{ mock.Mock }

func (m *MockBillingClient) SubmitBill(ctx context.Context, orderID kernel.ID, b bill.Bill) (bill.Bill, error) {
	args := m.Called(ctx, orderID, b)
	return args.Get(0).(bill.Bill), args.Error(1)
}

var testNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func fixedClock(now time.Time) kernel.Clock {
	return kernel.ClockFunc(func() time.Time { return now })
}

func activeUser(id int64) user.User {
	u, err := user.NewUser(kernel.MustNewID(id), true, false, user.Address{
		Name:    "Ada Lovelace",
		Street:  "Main St 1",
		City:    "London",
		Country: "UK",
		ZipCode: "N1",
	})
	if err != nil {
		panic(err)
	}
	return u
}

func bannedUser(id int64) user.User {
	u, err := user.NewUser(kernel.MustNewID(id), true, true, user.Address{Name: "Banned"})
	if err != nil {
		panic(err)
	}
	return u
}

func rentableCar(id int64, price float64) car.Car {
	c, err := car.NewCar(kernel.MustNewID(id), false, price)
	if err != nil {
		panic(err)
	}
	return c
}

func eolCar(id int64) car.Car {
	c, err := car.NewCar(kernel.MustNewID(id), true, 10)
	if err != nil {
		panic(err)
	}
	return c
}

func restoredOrder(id, userID, carID int64, start, end *time.Time, canceled bool) *order.Order {
	o, err := order.RestoreOrder(kernel.MustNewID(id), kernel.MustNewID(userID), kernel.MustNewID(carID),
		start, end, canceled, nil)
	if err != nil {
		panic(err)
	}
	return o
}

func withID(id int64) func(*order.Order) *order.Order {
	return func(o *order.Order) *order.Order {
		assigned, err := o.AssignID(kernel.MustNewID(id))
		if err != nil {
			panic(err)
		}
		return assigned
	}
}
