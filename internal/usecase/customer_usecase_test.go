package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCustomerUsecase_CreateCustomer_Success(t *testing.T) {
	customers := new(CustomerRepoMock)
	uc := usecase.NewCustomerUsecase(customers)

	customers.On("Create", mock.Anything, mock.MatchedBy(func(c model.Customer) bool {
		return c.Name == "Ana" && c.Document == "12345678900"
	})).Return(model.Customer{ID: 3, Name: "Ana", Document: "12345678900"}, nil)

	id, err := uc.CreateCustomer(context.Background(), usecase.CustomerInput{
		Name:     " Ana ",
		Document: "12345678900",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), id)
	customers.AssertExpectations(t)
}

func TestCustomerUsecase_CreateCustomer_DocumentRequired(t *testing.T) {
	uc := usecase.NewCustomerUsecase(new(CustomerRepoMock))

	_, err := uc.CreateCustomer(context.Background(), usecase.CustomerInput{Name: "Ana"})
	assertHTTPError(t, err, http.StatusBadRequest, "document required")
}

func TestCustomerUsecase_CreateCustomer_DuplicateDocument(t *testing.T) {
	customers := new(CustomerRepoMock)
	uc := usecase.NewCustomerUsecase(customers)

	customers.On("Create", mock.Anything, mock.Anything).Return(model.Customer{}, repo.ErrDuplicate)

	_, err := uc.CreateCustomer(context.Background(), usecase.CustomerInput{
		Name:     "Ana",
		Document: "12345678900",
	})
	assertHTTPError(t, err, http.StatusConflict, "document already registered")
}

func TestCustomerUsecase_GetCustomerByDocument(t *testing.T) {
	customers := new(CustomerRepoMock)
	uc := usecase.NewCustomerUsecase(customers)

	customers.On("FindByDocument", mock.Anything, "12345678900").Return(model.Customer{ID: 3, Name: "Ana"}, nil)

	c, err := uc.GetCustomerByDocument(context.Background(), " 12345678900 ")
	assert.NoError(t, err)
	assert.Equal(t, "Ana", c.Name)
}

func TestCustomerUsecase_GetCustomerByDocument_NotFound(t *testing.T) {
	customers := new(CustomerRepoMock)
	uc := usecase.NewCustomerUsecase(customers)

	customers.On("FindByDocument", mock.Anything, "000").Return(model.Customer{}, repo.ErrNotFound)

	_, err := uc.GetCustomerByDocument(context.Background(), "000")
	assertHTTPError(t, err, http.StatusNotFound, "not found")
}
