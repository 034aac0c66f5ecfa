package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shenikar/relief_coordination_system/internal/config"
	"github.com/shenikar/relief_coordination_system/internal/hierarchy"
	"github.com/shenikar/relief_coordination_system/internal/lock"
	"github.com/shenikar/relief_coordination_system/internal/models"
	"github.com/shenikar/relief_coordination_system/internal/repository/memory"
	webhook_mocks "github.com/shenikar/relief_coordination_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testEnv собирает движки поверх хранилищ в памяти
type testEnv struct {
	cfg         *config.Config
	logger      *logrus.Logger
	directory   *hierarchy.Directory
	stock       *memory.StockStore
	sosStore    *memory.SOSStore
	mpStore     *memory.MissingPersonStore
	ledger      StockLedger
	allocations AllocationService
	sos         SOSService
	missing     MissingPersonService
	tracking    TrackingRegistry
	lookup      CaseLookupService
	publisher   *webhook_mocks.MockPublisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	publisher := webhook_mocks.NewMockPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		LockWait:             2 * time.Second,
		LedgerMaxRetries:     1000,
		BadgeRefreshInterval: 30 * time.Second,
	}

	env := &testEnv{
		cfg:       cfg,
		logger:    logger,
		directory: hierarchy.MustDefault(),
		stock:     memory.NewStockStore(),
		sosStore:  memory.NewSOSStore(),
		mpStore:   memory.NewMissingPersonStore(),
		publisher: publisher,
	}
	locker := lock.NewLocalLocker(cfg.LockWait)
	env.tracking = NewTrackingRegistry(memory.NewTrackingStore(), logger)
	env.ledger = NewStockLedger(env.stock, env.directory, logger, cfg)
	env.allocations = NewAllocationService(memory.NewAllocationStore(), env.ledger, env.directory, locker, logger, publisher)
	env.sos = NewSOSService(env.sosStore, env.tracking, env.directory, locker, logger, publisher)
	env.missing = NewMissingPersonService(env.mpStore, env.tracking, env.directory, locker, logger, publisher)
	env.lookup = NewCaseLookupService(env.tracking, env.sosStore, env.mpStore, env.directory, logger)
	return env
}

func (e *testEnv) replenish(t *testing.T, id models.AuthorityID, rt models.ResourceType, qty int64) {
	t.Helper()
	_, err := e.ledger.Replenish(context.Background(), id, rt, qty)
	require.NoError(t, err)
}

func (e *testEnv) available(t *testing.T, id models.AuthorityID, rt models.ResourceType) int64 {
	t.Helper()
	entry, err := e.ledger.Query(context.Background(), id, rt)
	require.NoError(t, err)
	return entry.Available
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }

// aliKhan - эталонный SOS-запрос
func aliKhan() models.SOSSubmission {
	return models.SOSSubmission{
		Name:          "Ali Khan",
		Phone:         "03001234567",
		CNIC:          "3520112345671",
		LocationLat:   floatPtr(33.6844),
		LocationLng:   floatPtr(73.0479),
		PeopleCount:   3,
		EmergencyType: "flood",
		Description:   "Trapped on roof",
		ProvinceID:    1,
		DistrictID:    5,
	}
}

func violationFields(t *testing.T, err error) []string {
	t.Helper()
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	fields := make([]string, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		fields = append(fields, v.Field)
	}
	return fields
}
