package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/grace_blooms_backend/internal/apperrors"
	portssvc "github.com/SscSPs/grace_blooms_backend/internal/core/ports/services"
	"github.com/SscSPs/grace_blooms_backend/internal/core/services"
	"github.com/SscSPs/grace_blooms_backend/internal/dto"
	"github.com/SscSPs/grace_blooms_backend/internal/repositories/memory"
	"github.com/stretchr/testify/suite"
)

type KnowledgeServiceTestSuite struct {
	suite.Suite
	service portssvc.KnowledgeSvcFacade
}

func (suite *KnowledgeServiceTestSuite) SetupTest() {
	suite.service = services.NewKnowledgeService(memory.NewStore())
}

func (suite *KnowledgeServiceTestSuite) TestStoreKnowledge_UpsertBySourceID() {
	ctx := context.Background()

	firstID, err := suite.service.StoreKnowledge(ctx, dto.StoreKnowledgeRequest{
		SourceType: "product", SourceID: "p1", Content: "Red roses, 12 stems",
	})
	suite.Require().NoError(err)

	secondID, err := suite.service.StoreKnowledge(ctx, dto.StoreKnowledgeRequest{
		SourceType: "faq", SourceID: "p1", Content: "Red roses, 24 stems", Embedding: []float32{0.1, 0.2},
	})
	suite.Require().NoError(err)
	suite.Equal(firstID, secondID)

	entries, err := suite.service.GetKnowledge(ctx, nil)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal("Red roses, 24 stems", entries[0].Content)
	suite.Equal([]float32{0.1, 0.2}, entries[0].Embedding)
	suite.Equal("product", entries[0].SourceType, "source type is fixed at creation")
	suite.WithinDuration(time.Now(), entries[0].UpdatedAt, time.Second)
}

func (suite *KnowledgeServiceTestSuite) TestGetKnowledge_FilterBySourceType() {
	ctx := context.Background()
	for _, req := range []dto.StoreKnowledgeRequest{
		{SourceType: "product", SourceID: "p1", Content: "roses"},
		{SourceType: "product", SourceID: "p2", Content: "lilies"},
		{SourceType: "faq", SourceID: "f1", Content: "delivery hours"},
	} {
		_, err := suite.service.StoreKnowledge(ctx, req)
		suite.Require().NoError(err)
	}

	productType := "product"
	products, err := suite.service.GetKnowledge(ctx, &productType)
	suite.Require().NoError(err)
	suite.Len(products, 2)

	blank := " "
	all, err := suite.service.GetKnowledge(ctx, &blank)
	suite.Require().NoError(err)
	suite.Len(all, 3)

	missing := "policy"
	none, err := suite.service.GetKnowledge(ctx, &missing)
	suite.Require().NoError(err)
	suite.NotNil(none)
	suite.Empty(none)
}

func (suite *KnowledgeServiceTestSuite) TestStoreKnowledge_Validation() {
	ctx := context.Background()

	_, err := suite.service.StoreKnowledge(ctx, dto.StoreKnowledgeRequest{SourceType: "product", Content: "x"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.StoreKnowledge(ctx, dto.StoreKnowledgeRequest{SourceID: "p1", Content: "x"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *KnowledgeServiceTestSuite) TestGetKnowledgeBySource() {
	ctx := context.Background()
	id, err := suite.service.StoreKnowledge(ctx, dto.StoreKnowledgeRequest{
		SourceType: "faq", SourceID: "f1", Content: "We deliver 9am to 9pm",
	})
	suite.Require().NoError(err)

	entry, err := suite.service.GetKnowledgeBySource(ctx, "f1")
	suite.Require().NoError(err)
	suite.Equal(id, entry.KnowledgeID)
	suite.Equal("We deliver 9am to 9pm", entry.Content)

	_, err = suite.service.GetKnowledgeBySource(ctx, "f2")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.GetKnowledgeBySource(ctx, "  ")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestKnowledgeService(t *testing.T) {
	suite.Run(t, new(KnowledgeServiceTestSuite))
}
