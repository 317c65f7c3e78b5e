package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jimyag/vstor/internal/vstor/entity"
	"github.com/jimyag/vstor/pkg/apierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockReplicaService 是 ReplicaService 的 mock 实现
type MockReplicaService struct {
	mock.Mock
}

func (m *MockReplicaService) CreateReplica(ctx context.Context, req *entity.CreateReplicaRequest) (*entity.Replica, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Replica), args.Error(1)
}

func (m *MockReplicaService) DestroyReplica(ctx context.Context, req *entity.DestroyReplicaRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockReplicaService) ListReplicas(ctx context.Context) ([]entity.Replica, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Replica), args.Error(1)
}

func (m *MockReplicaService) StatReplicas(ctx context.Context) ([]entity.ReplicaStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ReplicaStats), args.Error(1)
}

func (m *MockReplicaService) ShareReplica(ctx context.Context, req *entity.ShareReplicaRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func TestReplica_CreateReplica(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name         string
		req          *entity.CreateReplicaRequest
		mockSetup    func(*MockReplicaService)
		expectStatus int
	}{
		{
			name: "successful create",
			req: &entity.CreateReplicaRequest{
				UUID: "replica-1",
				Pool: "pool-1",
				Size: 8 << 20,
			},
			mockSetup: func(m *MockReplicaService) {
				m.On("CreateReplica", mock.Anything, mock.AnythingOfType("*entity.CreateReplicaRequest")).
					Return(&entity.Replica{
						UUID:  "replica-1",
						Pool:  "pool-1",
						Size:  8 << 20,
						Share: entity.ShareNone,
						URI:   "bdev:///replica-1",
					}, nil)
			},
			expectStatus: http.StatusOK,
		},
		{
			name: "missing uuid rejected before service call",
			req: &entity.CreateReplicaRequest{
				Pool: "pool-1",
				Size: 8 << 20,
			},
			mockSetup:    nil,
			expectStatus: http.StatusBadRequest,
		},
		{
			name: "unknown pool maps to 404",
			req: &entity.CreateReplicaRequest{
				UUID: "replica-1",
				Pool: "no-such-pool",
				Size: 8 << 20,
			},
			mockSetup: func(m *MockReplicaService) {
				m.On("CreateReplica", mock.Anything, mock.AnythingOfType("*entity.CreateReplicaRequest")).
					Return(nil, apierror.WithMessagef(apierror.ErrPoolNotFound, "The pool 'no-such-pool' does not exist"))
			},
			expectStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockService := new(MockReplicaService)
			if tc.mockSetup != nil {
				tc.mockSetup(mockService)
			}

			replicaAPI := &Replica{replicaService: mockService}
			router := setupTestRouter()
			replicaAPI.RegisterRoutes(router.Group("/api"))

			w := doJSONRequest(t, router, "/api/replicas/create", tc.req)
			assert.Equal(t, tc.expectStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestReplica_ShareReplica(t *testing.T) {
	t.Parallel()

	t.Run("successful share", func(t *testing.T) {
		t.Parallel()

		mockService := new(MockReplicaService)
		mockService.On("ShareReplica", mock.Anything, mock.AnythingOfType("*entity.ShareReplicaRequest")).
			Return("nvmf://127.0.0.1:8420/nqn.2019-05.io.openebs:replica-1", nil)

		replicaAPI := &Replica{replicaService: mockService}
		router := setupTestRouter()
		replicaAPI.RegisterRoutes(router.Group("/api"))

		w := doJSONRequest(t, router, "/api/replicas/share", &entity.ShareReplicaRequest{
			UUID:  "replica-1",
			Share: "NVMF",
		})
		assert.Equal(t, http.StatusOK, w.Code)

		var resp entity.ShareReplicaResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "nvmf://127.0.0.1:8420/nqn.2019-05.io.openebs:replica-1", resp.URI)
		mockService.AssertExpectations(t)
	})

	t.Run("unknown share protocol rejected before service call", func(t *testing.T) {
		t.Parallel()

		mockService := new(MockReplicaService)
		replicaAPI := &Replica{replicaService: mockService}
		router := setupTestRouter()
		replicaAPI.RegisterRoutes(router.Group("/api"))

		w := doJSONRequest(t, router, "/api/replicas/share", &entity.ShareReplicaRequest{
			UUID:  "replica-1",
			Share: "SMB",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp apierror.ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "InvalidParameterValue", resp.Errors[0].Code)
		mockService.AssertExpectations(t)
	})

	t.Run("unknown replica maps to 404", func(t *testing.T) {
		t.Parallel()

		mockService := new(MockReplicaService)
		mockService.On("ShareReplica", mock.Anything, mock.AnythingOfType("*entity.ShareReplicaRequest")).
			Return("", apierror.WithMessagef(apierror.ErrReplicaNotFound, "The replica 'replica-x' does not exist"))

		replicaAPI := &Replica{replicaService: mockService}
		router := setupTestRouter()
		replicaAPI.RegisterRoutes(router.Group("/api"))

		w := doJSONRequest(t, router, "/api/replicas/share", &entity.ShareReplicaRequest{
			UUID:  "replica-x",
			Share: "NVMF",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestReplica_StatReplicas(t *testing.T) {
	t.Parallel()

	mockService := new(MockReplicaService)
	mockService.On("StatReplicas", mock.Anything).
		Return([]entity.ReplicaStats{
			{UUID: "replica-1", Pool: "pool-1", NumReadOps: 1000, NumWriteOps: 1000, BytesRead: 1000, BytesWritten: 1000},
		}, nil)

	replicaAPI := &Replica{replicaService: mockService}
	router := setupTestRouter()
	replicaAPI.RegisterRoutes(router.Group("/api"))

	w := doJSONRequest(t, router, "/api/replicas/stat", struct{}{})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp entity.StatReplicasResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp.Replicas, 1)
	assert.Equal(t, uint64(1000), resp.Replicas[0].NumReadOps)
	mockService.AssertExpectations(t)
}
