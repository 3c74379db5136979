package repository

import (
	"context"

	"app/internal/domain/model"
)

type VehicleRepository interface {
	List(ctx context.Context) ([]model.Vehicle, error)
	FindByID(ctx context.Context, id int64) (model.Vehicle, error)
	Create(ctx context.Context, v model.Vehicle) (model.Vehicle, error)
	Update(ctx context.Context, v model.Vehicle) error
	Delete(ctx context.Context, id int64) error
}
