package services

import (
	"context"
	"net/url"
	"payco/entity"
)

type Checkout interface {
	CreateSession(ctx context.Context, details *entity.PaymentDetails) (string, error)
	ProcessConfirmation(ctx context.Context, params url.Values) (*entity.Confirmation, error)
	TransactionDetail(ctx context.Context, reference string) ([]byte, error)
}

type LogHandler interface {
	Debug(message string)
	Info(message string)
	Warn(message string)
	Error(message string, err error)
}
