package services_test

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"
	"tx-lab/contract"
	"tx-lab/domain"
	"tx-lab/errors"
	"tx-lab/mocks"
	"tx-lab/observability"
	"tx-lab/repositories"
	"tx-lab/runtime"
	"tx-lab/runtime/workers"
	"tx-lab/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T, transactor contract.Transactor) services.IMessageService {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	executor := runtime.NewExecutor(log, workers.NewSupervisor(log, 10*time.Millisecond), 4, 64)
	executor.Start(context.Background())
	t.Cleanup(executor.Stop)
	return services.NewMessageService(log, executor, transactor, observability.NewMonitoringManager(log, executor))
}

func newBadgerStore(t *testing.T) *repositories.BadgerStore {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repositories.NewBadgerStore(db, slog.Default())
}

func listAll(t *testing.T, svc services.IMessageService) []domain.Message {
	t.Helper()
	messages, err := svc.List(context.Background()).Await(context.Background())
	require.NoError(t, err)
	return messages
}

func TestMessageService_SubmitThenList(t *testing.T) {
	req := require.New(t)
	svc := newService(t, newBadgerStore(t))

	stored, err := svc.Submit(context.Background(), services.Payload{"msg": lo.ToPtr("hello")}).
		Await(context.Background())
	req.NoError(err)
	id, ok := stored.ID()
	req.True(ok)
	req.NotEqual(uuid.Nil, id)
	req.Equal("hello", stored.Text())

	messages := listAll(t, svc)
	req.Len(messages, 1)
	got, _ := messages[0].ID()
	req.Equal(id, got)
	req.Equal("hello", messages[0].Text())
}

func TestMessageService_List_EmptyStore(t *testing.T) {
	req := require.New(t)
	svc := newService(t, newBadgerStore(t))

	messages := listAll(t, svc)

	req.NotNil(messages)
	req.Empty(messages)
}

func TestMessageService_Submit_InvalidInput(t *testing.T) {
	payloads := map[string]services.Payload{
		"missing field": {"text": lo.ToPtr("hello")},
		"null field":    {"msg": nil},
		"empty text":    {"msg": lo.ToPtr("")},
		"empty payload": {},
	}
	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			svc := newService(t, newBadgerStore(t))

			_, err := svc.Submit(context.Background(), payload).Await(context.Background())

			req.ErrorIs(err, errors.ErrInvalidInput)
			req.Empty(listAll(t, svc))
		})
	}
}

func TestMessageService_Submit_Concurrent(t *testing.T) {
	req := require.New(t)
	svc := newService(t, newBadgerStore(t))
	const n = 50

	futures := make([]*runtime.Future[domain.Message], n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			futures[i] = svc.Submit(context.Background(), services.Payload{"msg": lo.ToPtr(fmt.Sprintf("message %d", i))})
		}(i)
	}
	wg.Wait()

	ids := make(map[uuid.UUID]string, n)
	for _, future := range futures {
		msg, err := future.Await(context.Background())
		req.NoError(err)
		id, ok := msg.ID()
		req.True(ok)
		ids[id] = msg.Text()
	}
	req.Len(ids, n)

	messages := listAll(t, svc)
	req.Len(messages, n)
	for _, msg := range messages {
		id, _ := msg.ID()
		req.Equal(ids[id], msg.Text())
	}
}

// failingTransactor persists for real, then fails before commit.
type failingTransactor struct {
	inner contract.Transactor
}

func (f failingTransactor) Begin(ctx context.Context, mode contract.TxMode) (contract.Tx, error) {
	tx, err := f.inner.Begin(ctx, mode)
	if err != nil {
		return nil, err
	}
	return failingTx{Tx: tx}, nil
}

type failingTx struct {
	contract.Tx
}

func (f failingTx) Persist(ctx context.Context, message *domain.Message) error {
	if err := f.Tx.Persist(ctx, message); err != nil {
		return err
	}
	return fmt.Errorf("%w: constraint violated after insert", errors.ErrStore)
}

func TestMessageService_Submit_StoreFailureRollsBack(t *testing.T) {
	req := require.New(t)
	store := newBadgerStore(t)
	failing := newService(t, failingTransactor{inner: store})

	_, err := failing.Submit(context.Background(), services.Payload{"msg": lo.ToPtr("lost")}).
		Await(context.Background())
	req.ErrorIs(err, errors.ErrStore)

	req.Empty(listAll(t, newService(t, store)))
}

func TestMessageService_Submit_InvalidInputNeverReachesStore(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	transactor := mocks.NewMockTransactor(ctrl)
	tx := mocks.NewMockTx(ctrl)

	transactor.EXPECT().Begin(gomock.Any(), contract.ReadWrite).Return(tx, nil)
	tx.EXPECT().Persist(gomock.Any(), gomock.Any()).Times(0)
	tx.EXPECT().Commit(gomock.Any()).Times(0)
	tx.EXPECT().Rollback(gomock.Any()).Return(nil).Times(1)

	svc := newService(t, transactor)
	_, err := svc.Submit(context.Background(), services.Payload{}).Await(context.Background())

	req.ErrorIs(err, errors.ErrInvalidInput)
}

func TestMessageService_List_StoreFailure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	transactor := mocks.NewMockTransactor(ctrl)
	tx := mocks.NewMockTx(ctrl)

	transactor.EXPECT().Begin(gomock.Any(), contract.ReadOnly).Return(tx, nil)
	tx.EXPECT().FindAll(gomock.Any()).Return(nil, fmt.Errorf("%w: connection reset", errors.ErrStore))
	tx.EXPECT().Rollback(gomock.Any()).Return(nil).Times(1)

	svc := newService(t, transactor)
	messages, err := svc.List(context.Background()).Await(context.Background())

	req.ErrorIs(err, errors.ErrStore)
	req.Nil(messages)
}

func TestMessageService_CallerCancellationDoesNotInterruptWork(t *testing.T) {
	req := require.New(t)
	store := newBadgerStore(t)
	svc := newService(t, store)

	ctx, cancel := context.WithCancel(context.Background())
	future := svc.Submit(ctx, services.Payload{"msg": lo.ToPtr("still stored")})
	cancel()

	// The caller gives up waiting
	_, _ = future.Await(ctx)

	// The scheduled unit of work still commits
	stored, err := future.Await(context.Background())
	req.NoError(err)
	req.Equal("still stored", stored.Text())
	req.Len(listAll(t, svc), 1)
}
