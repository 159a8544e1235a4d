package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/services"
	"github.com/ArowuTest/raffle-backend/internal/services/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CSVImporterTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	entrants *mocks.MockEntrantService
}

func (s *CSVImporterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.entrants = mocks.NewMockEntrantService(s.ctrl)
}

func (s *CSVImporterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCSVImporterTestSuite(t *testing.T) {
	suite.Run(t, new(CSVImporterTestSuite))
}

func (s *CSVImporterTestSuite) TestImport_RegistersEveryRow() {
	csv := "name,nationalId,casinoAccountId,payoutKeyType,payoutKeyValue\n" +
		"Joana,123.456.789-00,casino-1,email,joana@example.com\n" +
		"Maria,98765432100,casino-2,,\n"

	var got []*models.RegistrationRequest
	s.entrants.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *models.RegistrationRequest) (*models.Entrant, error) {
			got = append(got, req)
			return &models.Entrant{ID: "e" + req.CasinoAccountID}, nil
		}).Times(2)

	result, err := NewCSVImporter(s.entrants, false).Import(context.Background(), strings.NewReader(csv))
	s.Require().NoError(err)

	s.Equal(2, result.TotalRows)
	s.Equal(2, result.Registered)
	s.Empty(result.Errors)
	s.Require().Len(got, 2)
	s.Equal("Joana", got[0].DisplayName)
	s.Equal("123.456.789-00", got[0].NationalID)
	s.Equal("email", got[0].PayoutKeyType)
	s.Equal("joana@example.com", got[0].PayoutKeyValue)
	s.Equal("", got[1].PayoutKeyType)
}

func (s *CSVImporterTestSuite) TestImport_CollectsRowFailures() {
	csv := "casinoAccountId,nationalId,name\n" +
		"casino-1,12345678900,Joana\n" +
		"casino-2,12345678900,Joana Again\n" +
		"casino-3,123,X\n" +
		"casino-4,11122233344,Ana\n"

	gomock.InOrder(
		s.entrants.EXPECT().Register(gomock.Any(), gomock.Any()).Return(&models.Entrant{ID: "e1"}, nil),
		s.entrants.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, &services.DuplicateEntrantError{NationalID: "12345678900"}),
		s.entrants.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, &services.ValidationError{Fields: map[string]string{"nationalId": "must be 11 characters"}}),
		s.entrants.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset")),
	)

	result, err := NewCSVImporter(s.entrants, false).Import(context.Background(), strings.NewReader(csv))
	s.Require().NoError(err)

	s.Equal(4, result.TotalRows)
	s.Equal(1, result.Registered)
	s.Equal(1, result.Duplicates)
	s.Equal(1, result.Invalid)
	s.Equal(1, result.Failed)
	s.Require().Len(result.Errors, 3)
	s.Equal(3, result.Errors[0].Row)
	s.Contains(result.Errors[0].Fields, "nationalId")
	s.Equal(4, result.Errors[1].Row)
	s.Equal("connection reset", result.Errors[2].Reason)
}

func (s *CSVImporterTestSuite) TestImport_DryRunOnlyValidates() {
	csv := "name,nationalId,casinoAccountId\n" +
		"Joana,12345678900,casino-1\n" +
		"J,abc,\n"

	result, err := NewCSVImporter(s.entrants, true).Import(context.Background(), strings.NewReader(csv))
	s.Require().NoError(err)

	s.Equal(2, result.TotalRows)
	s.Equal(1, result.Registered)
	s.Equal(1, result.Invalid)
	s.Require().Len(result.Errors, 1)
	s.Contains(result.Errors[0].Fields, "displayName")
	s.Contains(result.Errors[0].Fields, "casinoAccountId")
}

func (s *CSVImporterTestSuite) TestImport_HeaderAliasesAndBOM() {
	csv := "\ufeffCPF,Nick,CasinoId,PixKeyType,PixKey\n" +
		"12345678900,joana_streams,casino-1,phone,+55 11 99999-0000\n"

	s.entrants.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *models.RegistrationRequest) (*models.Entrant, error) {
			s.Equal("joana_streams", req.DisplayName)
			s.Equal("12345678900", req.NationalID)
			s.Equal("phone", req.PayoutKeyType)
			return &models.Entrant{ID: "e1"}, nil
		})

	result, err := NewCSVImporter(s.entrants, false).Import(context.Background(), strings.NewReader(csv))
	s.Require().NoError(err)
	s.Equal(1, result.Registered)
}

func (s *CSVImporterTestSuite) TestImport_MissingColumns() {
	_, err := NewCSVImporter(s.entrants, false).Import(context.Background(), strings.NewReader("name,email\nJoana,j@example.com\n"))
	s.Require().Error(err)
	s.Contains(err.Error(), "nationalId")
	s.Contains(err.Error(), "casinoAccountId")
}

func (s *CSVImporterTestSuite) TestImport_EmptyFile() {
	_, err := NewCSVImporter(s.entrants, false).Import(context.Background(), strings.NewReader(""))
	s.Error(err)
}

func (s *CSVImporterTestSuite) TestImport_StopsOnCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := NewCSVImporter(s.entrants, false).Import(ctx, strings.NewReader("name,nationalId,casinoAccountId\nJoana,12345678900,c\n"))
	s.ErrorIs(err, context.Canceled)
	s.Equal(0, result.TotalRows)
}
