package usecase_test

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/Bhooomika2605/Cashflow/internal/extractor"
	"github.com/Bhooomika2605/Cashflow/internal/usecase"
	"github.com/Bhooomika2605/Cashflow/internal/usecase/mocks"
)

func TestTransactionUseCase_Submit_PersistsThroughRetrier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txnRepo := mocks.NewMockTransactionRepository()
	invRepo := mocks.NewMockInventoryRepository()

	retrier := mocks.NewMockRetrier(ctrl)
	retrier.EXPECT().
		Retry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, op func() error) error {
			return op()
		})

	uc := usecase.NewTransactionUseCase(
		mocks.NewMockTransactionManager(),
		txnRepo,
		invRepo,
		mocks.NewMockIDGenerator(),
		retrier,
		extractor.New(extractor.Config{}),
		usecase.NewForecastUseCase(txnRepo, 30),
		usecase.NewInventoryUseCase(invRepo),
		usecase.NewFraudUseCase(txnRepo, 10),
		usecase.TransactionConfig{DefaultReorderLevel: 10},
	)

	result, err := uc.Submit(context.Background(), "sold 2 kg sugar for rs 90")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Transaction == nil {
		t.Fatalf("expected a recorded transaction")
	}
}
