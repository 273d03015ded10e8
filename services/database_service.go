package services

import (
	"context"
	"payco/entity"
)

type Database interface {
	WriteLogMessage(data Data) error

	SaveConfirmation(ctx context.Context, confirmation *entity.Confirmation) error
	GetConfirmation(ctx context.Context, reference string) (*entity.Confirmation, error)
}

type Data interface {
	DataType() string
}
