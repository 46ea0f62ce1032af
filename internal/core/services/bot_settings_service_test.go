package services_test

import (
	"context"
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

// --- Mock BotSettingsRepository ---
type MockBotSettingsRepository struct {
	mock.Mock
}

func (m *MockBotSettingsRepository) FindBotSettings(ctx context.Context, key string) (*domain.BotSettings, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BotSettings), args.Error(1)
}

func (m *MockBotSettingsRepository) UpsertBotSettings(ctx context.Context, key string, patch domain.BotSettingsPatch, updatedAt time.Time) (*domain.BotSettings, error) {
	args := m.Called(ctx, key, patch, updatedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BotSettings), args.Error(1)
}

type BotSettingsServiceTestSuite struct {
	suite.Suite
	service portssvc.BotSettingsSvcFacade
}

func (suite *BotSettingsServiceTestSuite) SetupTest() {
	suite.service = services.NewBotSettingsService(memory.NewStore())
}

func (suite *BotSettingsServiceTestSuite) TestGetBotSettings_Defaults() {
	settings, err := suite.service.GetBotSettings(context.Background())

	suite.Require().NoError(err)
	suite.Equal(domain.BotSettings{Enabled: true, SystemPrompt: "", Tone: "friendly", MaxMemoryChunks: 50}, settings)
}

func (suite *BotSettingsServiceTestSuite) TestUpdateBotSettings_FirstWriteOverlaysDefaults() {
	ctx := context.Background()
	limit := 5

	updated, err := suite.service.UpdateBotSettings(ctx, dto.UpdateBotSettingsRequest{MaxMemoryChunks: &limit})

	suite.Require().NoError(err)
	suite.True(updated.Enabled)
	suite.Equal("friendly", updated.Tone)
	suite.Equal(5, updated.MaxMemoryChunks)
	suite.False(updated.UpdatedAt.IsZero())

	stored, err := suite.service.GetBotSettings(ctx)
	suite.Require().NoError(err)
	suite.Equal(updated, stored)
}

func (suite *BotSettingsServiceTestSuite) TestUpdateBotSettings_PatchKeepsOtherFields() {
	ctx := context.Background()
	prompt := "You help customers pick bouquets."
	tone := "formal"
	_, err := suite.service.UpdateBotSettings(ctx, dto.UpdateBotSettingsRequest{SystemPrompt: &prompt, Tone: &tone})
	suite.Require().NoError(err)

	disabled := false
	updated, err := suite.service.UpdateBotSettings(ctx, dto.UpdateBotSettingsRequest{Enabled: &disabled})

	suite.Require().NoError(err)
	suite.False(updated.Enabled)
	suite.Equal(prompt, updated.SystemPrompt)
	suite.Equal("formal", updated.Tone)
	suite.Equal(domain.DefaultMaxMemoryChunks, updated.MaxMemoryChunks)
}

func (suite *BotSettingsServiceTestSuite) TestUpdateBotSettings_Validation() {
	ctx := context.Background()
	zero := 0
	blank := "  "

	_, err := suite.service.UpdateBotSettings(ctx, dto.UpdateBotSettingsRequest{MaxMemoryChunks: &zero})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.UpdateBotSettings(ctx, dto.UpdateBotSettingsRequest{Tone: &blank})
	suite.ErrorIs(err, apperrors.ErrValidation)

	settings, err := suite.service.GetBotSettings(ctx)
	suite.Require().NoError(err)
	suite.Equal(domain.DefaultBotSettings(), settings, "rejected updates leave nothing behind")
}

func (suite *BotSettingsServiceTestSuite) TestGetBotSettings_RepoError() {
	ctx := context.Background()
	repo := new(MockBotSettingsRepository)
	repo.On("FindBotSettings", ctx, domain.BotSettingsKey).Return(nil, assert.AnError).Once()

	settings, err := services.NewBotSettingsService(repo).GetBotSettings(ctx)

	suite.ErrorIs(err, assert.AnError)
	suite.Equal(domain.DefaultBotSettings(), settings)
	repo.AssertExpectations(suite.T())
}

func (suite *BotSettingsServiceTestSuite) TestUpdateBotSettings_RepoError() {
	ctx := context.Background()
	repo := new(MockBotSettingsRepository)
	repo.On("UpsertBotSettings", ctx, domain.BotSettingsKey, mock.AnythingOfType("domain.BotSettingsPatch"), mock.AnythingOfType("time.Time")).
		Return(nil, assert.AnError).Once()
	enabled := true

	_, err := services.NewBotSettingsService(repo).UpdateBotSettings(ctx, dto.UpdateBotSettingsRequest{Enabled: &enabled})

	suite.ErrorIs(err, assert.AnError)
	repo.AssertExpectations(suite.T())
}

func TestBotSettingsService(t *testing.T) {
	suite.Run(t, new(BotSettingsServiceTestSuite))
}
