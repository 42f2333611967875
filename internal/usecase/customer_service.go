package usecase

import (
	"context"

	"github.com/Gunvolt24/zomato/internal/cache/aside"
	"github.com/Gunvolt24/zomato/internal/domain"
	"github.com/Gunvolt24/zomato/internal/ports"
)

// Проверка, что CustomerService удовлетворяет интерфейсу ports.CustomerService.
var _ ports.CustomerService = (*CustomerService)(nil)

// CustomerService — клиенты. Повторный email отвергается на уровне БД (domain.ErrConflict).
type CustomerService struct {
	repo      ports.CustomerRepository
	cache     *aside.Cache
	log       ports.Logger
	validator ports.Validator

	getByID func(context.Context, int64) (*domain.Customer, error)
}

func NewCustomerService(
	repo ports.CustomerRepository,
	cache *aside.Cache,
	log ports.Logger,
	validator ports.Validator,
) *CustomerService {
	return &CustomerService{
		repo:      repo,
		cache:     cache,
		log:       log,
		validator: validator,
		getByID:   aside.Wrap(cache, aside.NSCustomers, "get", repo.GetByID),
	}
}

func (s *CustomerService) Create(ctx context.Context, in *domain.CustomerInput) (*domain.Customer, error) {
	if err := s.validator.ValidateCustomer(ctx, in); err != nil {
		return nil, err
	}

	customer := &domain.Customer{}
	in.Apply(customer)
	if err := s.repo.Create(ctx, customer); err != nil {
		s.log.Warnf(ctx, "repo.Create customer failed err=%v", err)
		return nil, err
	}

	s.cache.Invalidate(ctx, aside.NSCustomers, aside.NSAnalytics)
	s.log.Infof(ctx, "customer created id=%d", customer.ID)
	return customer, nil
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, notFound("customer", id)
	}
	return customer, nil
}

func (s *CustomerService) List(ctx context.Context, limit, offset int) ([]*domain.Customer, error) {
	key := aside.Key(aside.NSCustomers, "list", limit, offset)
	return aside.Fetch(ctx, s.cache, aside.NSCustomers, key, func(ctx context.Context) ([]*domain.Customer, error) {
		return s.repo.List(ctx, limit, offset)
	})
}

func (s *CustomerService) Update(ctx context.Context, id int64, in *domain.CustomerInput) (*domain.Customer, error) {
	if err := s.validator.ValidateCustomer(ctx, in); err != nil {
		return nil, err
	}

	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, notFound("customer", id)
	}

	in.Apply(customer)
	if err := s.repo.Update(ctx, customer); err != nil {
		s.log.Warnf(ctx, "repo.Update customer failed id=%d err=%v", id, err)
		return nil, err
	}

	s.cache.Invalidate(ctx, aside.NSCustomers, aside.NSAnalytics)
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, aside.NSCustomers, aside.NSAnalytics)
	s.log.Infof(ctx, "customer deleted id=%d", id)
	return nil
}
