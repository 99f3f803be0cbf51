package summarizers

import (
	"context"
	"errors"

	"log-summary/internal/models"
	"log-summary/internal/shared/loggers"
	"log-summary/internal/shared/svcerrors"
	"log-summary/internal/stores"

	"golang.org/x/sync/singleflight"
)

const listSummariesKey = "summaries"

// HistoryService reads back stored runs.
//
//go:generate mockgen -source=history_service.go -destination=./mocks/history_service_mock.go -package=mocks
type HistoryService interface {
	Processed(ctx context.Context) (*models.History, *svcerrors.ServiceError)
	Get(ctx context.Context, summaryID string) (*models.Summary, *svcerrors.ServiceError)
	RawLog(ctx context.Context, summaryID string) ([]byte, *svcerrors.ServiceError)
}

type historyService struct {
	summaryStore stores.SummaryStore
	rawLogStore  stores.RawLogStore
	limit        int

	// listGroup collapses concurrent history listings into one store scan.
	listGroup singleflight.Group
}

func NewHistoryService(summaryStore stores.SummaryStore, rawLogStore stores.RawLogStore, limit int) HistoryService {
	return &historyService{summaryStore: summaryStore, rawLogStore: rawLogStore, limit: limit}
}

func (s *historyService) Processed(ctx context.Context) (*models.History, *svcerrors.ServiceError) {
	v, err, shared := s.listGroup.Do(listSummariesKey, func() (any, error) {
		return s.summaryStore.List(ctx)
	})
	if err != nil {
		return nil, errInternalSummaryStoreFailed(err)
	}
	summaries := v.([]*models.Summary)
	history := SelectProcessed(summaries, s.limit)
	loggers.Ctx(ctx).Debug().
		Int("stored", len(summaries)).
		Int("selected", len(history.Executions)).
		Bool("shared", shared).
		Msg("selected processed executions")
	return &history, nil
}

func (s *historyService) Get(ctx context.Context, summaryID string) (*models.Summary, *svcerrors.ServiceError) {
	summary, err := s.summaryStore.Get(ctx, summaryID)
	if err != nil {
		if errors.Is(err, stores.ErrSummaryNotFound) {
			return nil, errSummaryNotFound(summaryID, err)
		}
		return nil, errInternalSummaryStoreFailed(err)
	}
	return summary, nil
}

func (s *historyService) RawLog(ctx context.Context, summaryID string) ([]byte, *svcerrors.ServiceError) {
	raw, err := s.rawLogStore.Get(ctx, summaryID)
	if err != nil {
		if errors.Is(err, stores.ErrRawLogNotFound) {
			return nil, errRawLogNotFound(summaryID, err)
		}
		return nil, errInternalRawLogStoreFailed(err)
	}
	return raw, nil
}
