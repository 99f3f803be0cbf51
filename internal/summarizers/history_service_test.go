package summarizers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"log-summary/internal/models"
	"log-summary/internal/stores"
	"log-summary/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHistoryService_Processed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSummaryStore := mocks.NewMockSummaryStore(ctrl)
	service := NewHistoryService(mockSummaryStore, mocks.NewMockRawLogStore(ctrl), 1)

	mockSummaryStore.EXPECT().
		List(gomock.Any()).
		Return([]*models.Summary{summaryWith("01A", "1.0.0", true), summaryWith("01B", "1.0.1", true)}, nil)

	history, svcErr := service.Processed(context.Background())
	require.Nil(t, svcErr)
	assert.Equal(t, []string{"01B"}, ids(history.Executions))
}

func TestHistoryService_Processed_SharesConcurrentScans(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSummaryStore := mocks.NewMockSummaryStore(ctrl)
	service := NewHistoryService(mockSummaryStore, mocks.NewMockRawLogStore(ctrl), 20)

	started := make(chan struct{})
	release := make(chan struct{})
	mockSummaryStore.EXPECT().
		List(gomock.Any()).
		DoAndReturn(func(context.Context) ([]*models.Summary, error) {
			close(started)
			<-release
			return []*models.Summary{summaryWith("01A", "1.0.0", true)}, nil
		}).
		Times(1)

	const callers = 4
	var wg sync.WaitGroup
	results := make([]*models.History, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i > 0 {
				<-started
			}
			history, svcErr := service.Processed(context.Background())
			assert.Nil(t, svcErr)
			results[i] = history
		}()
	}

	<-started
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, history := range results {
		require.NotNil(t, history)
		assert.Equal(t, []string{"01A"}, ids(history.Executions))
	}
}

func TestHistoryService_Processed_StoreError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSummaryStore := mocks.NewMockSummaryStore(ctrl)
	service := NewHistoryService(mockSummaryStore, mocks.NewMockRawLogStore(ctrl), 20)

	mockSummaryStore.EXPECT().List(gomock.Any()).Return(nil, errors.New("io error"))

	history, svcErr := service.Processed(context.Background())
	assert.Nil(t, history)
	require.NotNil(t, svcErr)
	assert.Equal(t, codeInternalSummaryStoreFailed, svcErr.Code)
}

func TestHistoryService_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		storeErr     error
		expectedCode string
	}{
		{name: "found"},
		{name: "not found", storeErr: stores.ErrSummaryNotFound, expectedCode: codeSummaryNotFound},
		{name: "store failure", storeErr: errors.New("io error"), expectedCode: codeInternalSummaryStoreFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSummaryStore := mocks.NewMockSummaryStore(ctrl)
			service := NewHistoryService(mockSummaryStore, mocks.NewMockRawLogStore(ctrl), 20)

			var stored *models.Summary
			if tt.storeErr == nil {
				stored = summaryWith("01A", "1.0.0", true)
			}
			mockSummaryStore.EXPECT().Get(gomock.Any(), "01A").Return(stored, tt.storeErr)

			summary, svcErr := service.Get(context.Background(), "01A")
			if tt.expectedCode == "" {
				require.Nil(t, svcErr)
				assert.Equal(t, stored, summary)
				return
			}
			assert.Nil(t, summary)
			require.NotNil(t, svcErr)
			assert.Equal(t, tt.expectedCode, svcErr.Code)
		})
	}
}

func TestHistoryService_RawLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		raw          []byte
		storeErr     error
		expectedCode string
		expectedHTTP int
	}{
		{name: "archived", raw: []byte("line 1\nline 2\n")},
		{name: "not archived", storeErr: stores.ErrRawLogNotFound, expectedCode: codeRawLogNotFound, expectedHTTP: 404},
		{name: "store failure", storeErr: errors.New("corrupt frame"), expectedCode: codeInternalRawLogStoreFailed, expectedHTTP: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRawLogStore := mocks.NewMockRawLogStore(ctrl)
			service := NewHistoryService(mocks.NewMockSummaryStore(ctrl), mockRawLogStore, 20)

			mockRawLogStore.EXPECT().Get(gomock.Any(), "01A").Return(tt.raw, tt.storeErr)

			raw, svcErr := service.RawLog(context.Background(), "01A")
			if tt.expectedCode == "" {
				require.Nil(t, svcErr)
				assert.Equal(t, tt.raw, raw)
				return
			}
			assert.Nil(t, raw)
			require.NotNil(t, svcErr)
			assert.Equal(t, tt.expectedCode, svcErr.Code)
			assert.Equal(t, tt.expectedHTTP, svcErr.HttpStatusCode)
		})
	}
}
