package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/grace_blooms_backend/internal/apperrors"
	"github.com/SscSPs/grace_blooms_backend/internal/core/domain"
	portssvc "github.com/SscSPs/grace_blooms_backend/internal/core/ports/services"
	"github.com/SscSPs/grace_blooms_backend/internal/core/services"
	"github.com/SscSPs/grace_blooms_backend/internal/dto"
	"github.com/SscSPs/grace_blooms_backend/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock MemoryChunkRepository ---
type MockMemoryChunkRepository struct {
	mock.Mock
}

func (m *MockMemoryChunkRepository) ListChunksByUser(ctx context.Context, userID string) ([]domain.MemoryChunk, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MemoryChunk), args.Error(1)
}

func (m *MockMemoryChunkRepository) ListRecentChunksByUser(ctx context.Context, userID string, limit int) ([]domain.MemoryChunk, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MemoryChunk), args.Error(1)
}

func (m *MockMemoryChunkRepository) SaveChunk(ctx context.Context, chunk domain.MemoryChunk) error {
	return m.Called(ctx, chunk).Error(0)
}

func (m *MockMemoryChunkRepository) DeleteChunk(ctx context.Context, chunkID string) error {
	return m.Called(ctx, chunkID).Error(0)
}

func (m *MockMemoryChunkRepository) DeleteChunksByUser(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

// --- Mock BotSettingsReader ---
type MockBotSettingsReader struct {
	mock.Mock
}

func (m *MockBotSettingsReader) GetBotSettings(ctx context.Context) (domain.BotSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.BotSettings), args.Error(1)
}

// --- Test Suite ---
type MemoryServiceTestSuite struct {
	suite.Suite
	repos    *memory.Store
	settings *MockBotSettingsReader
	service  portssvc.MemorySvcFacade
	tick     time.Time
}

func (suite *MemoryServiceTestSuite) SetupTest() {
	suite.repos = memory.NewStore()
	suite.settings = new(MockBotSettingsReader)
	suite.tick = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	suite.service = services.NewMemoryService(suite.repos, suite.settings, services.WithMemoryClock(suite.clock))
}

// clock advances one second per call so every chunk gets a distinct timestamp.
func (suite *MemoryServiceTestSuite) clock() time.Time {
	suite.tick = suite.tick.Add(time.Second)
	return suite.tick
}

func (suite *MemoryServiceTestSuite) withCap(n int) {
	settings := domain.DefaultBotSettings()
	settings.MaxMemoryChunks = n
	suite.settings.On("GetBotSettings", mock.Anything).Return(settings, nil)
}

func (suite *MemoryServiceTestSuite) store(userID, content string) string {
	id, err := suite.service.StoreMemory(context.Background(), userID, dto.StoreMemoryRequest{Content: content, Category: "preference"})
	suite.Require().NoError(err)
	return id
}

func contents(chunks []domain.MemoryChunk) []string {
	out := make([]string, len(chunks))
	for i, c := range chunks {
		out[i] = c.Content
	}
	return out
}

// --- Test Cases ---

func (suite *MemoryServiceTestSuite) TestStoreMemory_BelowCap() {
	suite.withCap(3)

	id := suite.store("user-1", "likes tulips")

	suite.NotEmpty(id)
	chunks, err := suite.service.GetUserMemory(context.Background(), "user-1", 0)
	suite.Require().NoError(err)
	suite.Require().Len(chunks, 1)
	suite.Equal(id, chunks[0].ChunkID)
	suite.Equal("user-1", chunks[0].UserID)
	suite.Equal("preference", chunks[0].Category)
}

func (suite *MemoryServiceTestSuite) TestStoreMemory_EvictsOldestAtCap() {
	suite.withCap(3)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		suite.store("user-1", fmt.Sprintf("m%d", i))
	}
	suite.store("user-1", "m4")

	chunks, err := suite.service.GetUserMemory(ctx, "user-1", 10)
	suite.Require().NoError(err)
	suite.Equal([]string{"m4", "m3", "m2"}, contents(chunks))
}

func (suite *MemoryServiceTestSuite) TestStoreMemory_CapIsPerUser() {
	suite.withCap(2)
	ctx := context.Background()

	suite.store("user-1", "a1")
	suite.store("user-1", "a2")
	suite.store("user-2", "b1")
	suite.store("user-1", "a3")

	u1, err := suite.service.GetUserMemory(ctx, "user-1", 10)
	suite.Require().NoError(err)
	suite.Equal([]string{"a3", "a2"}, contents(u1))

	u2, err := suite.service.GetUserMemory(ctx, "user-2", 10)
	suite.Require().NoError(err)
	suite.Equal([]string{"b1"}, contents(u2))
}

func (suite *MemoryServiceTestSuite) TestStoreMemory_OverCapEvictsExactlyOne() {
	suite.withCap(2)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		suite.Require().NoError(suite.repos.SaveChunk(ctx, domain.MemoryChunk{
			ChunkID:   fmt.Sprintf("seed-%d", i),
			UserID:    "user-1",
			Content:   fmt.Sprintf("s%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	suite.store("user-1", "new")

	chunks, err := suite.service.GetUserMemory(ctx, "user-1", 10)
	suite.Require().NoError(err)
	suite.Equal([]string{"new", "s3", "s2", "s1"}, contents(chunks))
}

func (suite *MemoryServiceTestSuite) TestStoreMemory_TieBrokenByChunkID() {
	suite.withCap(2)
	ctx := context.Background()
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.Require().NoError(suite.repos.SaveChunk(ctx, domain.MemoryChunk{ChunkID: "b", UserID: "user-1", Content: "second", CreatedAt: at}))
	suite.Require().NoError(suite.repos.SaveChunk(ctx, domain.MemoryChunk{ChunkID: "a", UserID: "user-1", Content: "first", CreatedAt: at}))

	suite.store("user-1", "third")

	chunks, err := suite.service.GetUserMemory(ctx, "user-1", 10)
	suite.Require().NoError(err)
	suite.ElementsMatch([]string{"second", "third"}, contents(chunks))
}

func (suite *MemoryServiceTestSuite) TestStoreMemory_SettingsErrorUsesDefaultCap() {
	suite.settings.On("GetBotSettings", mock.Anything).Return(domain.BotSettings{}, assert.AnError)
	ctx := context.Background()

	for i := 0; i < domain.DefaultMaxMemoryChunks+1; i++ {
		suite.store("user-1", fmt.Sprintf("m%d", i))
	}

	chunks, err := suite.service.GetUserMemory(ctx, "user-1", 1000)
	suite.Require().NoError(err)
	suite.Len(chunks, domain.DefaultMaxMemoryChunks)
	suite.Equal("m1", chunks[len(chunks)-1].Content)
}

func (suite *MemoryServiceTestSuite) TestStoreMemory_Validation() {
	ctx := context.Background()

	_, err := suite.service.StoreMemory(ctx, " ", dto.StoreMemoryRequest{Content: "x", Category: "c"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.StoreMemory(ctx, "user-1", dto.StoreMemoryRequest{Content: "  ", Category: "c"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.settings.AssertNotCalled(suite.T(), "GetBotSettings", mock.Anything)
}

func (suite *MemoryServiceTestSuite) TestStoreMemory_EvictionRaceIgnored() {
	ctx := context.Background()
	repo := new(MockMemoryChunkRepository)
	settings := new(MockBotSettingsReader)
	one := domain.DefaultBotSettings()
	one.MaxMemoryChunks = 1
	settings.On("GetBotSettings", ctx).Return(one, nil).Once()
	repo.On("ListChunksByUser", ctx, "user-1").Return([]domain.MemoryChunk{{ChunkID: "old", UserID: "user-1"}}, nil).Once()
	repo.On("DeleteChunk", ctx, "old").Return(apperrors.ErrNotFound).Once()
	repo.On("SaveChunk", ctx, mock.AnythingOfType("domain.MemoryChunk")).Return(nil).Once()

	id, err := services.NewMemoryService(repo, settings).StoreMemory(ctx, "user-1", dto.StoreMemoryRequest{Content: "x", Category: "c"})

	suite.Require().NoError(err)
	suite.NotEmpty(id)
	repo.AssertExpectations(suite.T())
}

func (suite *MemoryServiceTestSuite) TestStoreMemory_DeleteErrorAborts() {
	ctx := context.Background()
	repo := new(MockMemoryChunkRepository)
	one := domain.DefaultBotSettings()
	one.MaxMemoryChunks = 1
	settings := new(MockBotSettingsReader)
	settings.On("GetBotSettings", ctx).Return(one, nil).Once()
	repo.On("ListChunksByUser", ctx, "user-1").Return([]domain.MemoryChunk{{ChunkID: "old"}}, nil).Once()
	repo.On("DeleteChunk", ctx, "old").Return(assert.AnError).Once()

	_, err := services.NewMemoryService(repo, settings).StoreMemory(ctx, "user-1", dto.StoreMemoryRequest{Content: "x", Category: "c"})

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	repo.AssertNotCalled(suite.T(), "SaveChunk", mock.Anything, mock.Anything)
}

func (suite *MemoryServiceTestSuite) TestGetUserMemory_DefaultLimit() {
	suite.withCap(100)
	ctx := context.Background()
	for i := 0; i < domain.DefaultMemoryLimit+5; i++ {
		suite.store("user-1", fmt.Sprintf("m%d", i))
	}

	chunks, err := suite.service.GetUserMemory(ctx, "user-1", 0)

	suite.Require().NoError(err)
	suite.Len(chunks, domain.DefaultMemoryLimit)
	suite.Equal(fmt.Sprintf("m%d", domain.DefaultMemoryLimit+4), chunks[0].Content)
}

func (suite *MemoryServiceTestSuite) TestGetUserMemory_UnknownUserIsEmpty() {
	chunks, err := suite.service.GetUserMemory(context.Background(), "nobody", 5)

	suite.Require().NoError(err)
	suite.NotNil(chunks)
	suite.Empty(chunks)
}

func (suite *MemoryServiceTestSuite) TestClearUserMemory() {
	suite.withCap(10)
	ctx := context.Background()
	suite.store("user-1", "a")
	suite.store("user-1", "b")
	suite.store("user-2", "c")

	deleted, err := suite.service.ClearUserMemory(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Equal(2, deleted)
	chunks, err := suite.service.GetUserMemory(ctx, "user-1", 10)
	suite.Require().NoError(err)
	suite.Empty(chunks)

	other, err := suite.service.GetUserMemory(ctx, "user-2", 10)
	suite.Require().NoError(err)
	suite.Len(other, 1)

	deleted, err = suite.service.ClearUserMemory(ctx, "user-1")
	suite.Require().NoError(err)
	suite.Zero(deleted)
}

func (suite *MemoryServiceTestSuite) TestClearUserMemory_RepoError() {
	ctx := context.Background()
	repo := new(MockMemoryChunkRepository)
	repo.On("DeleteChunksByUser", ctx, "user-1").Return(0, assert.AnError).Once()

	_, err := services.NewMemoryService(repo, nil).ClearUserMemory(ctx, "user-1")

	suite.ErrorIs(err, assert.AnError)
	repo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestMemoryService(t *testing.T) {
	suite.Run(t, new(MemoryServiceTestSuite))
}
