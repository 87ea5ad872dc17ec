package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Habib7442/apromax-admin/internal/apperrors"
	"github.com/Habib7442/apromax-admin/internal/core/domain"
	portssvc "github.com/Habib7442/apromax-admin/internal/core/ports/services"
	"github.com/Habib7442/apromax-admin/internal/core/services"
	"github.com/Habib7442/apromax-admin/internal/dto"
	"github.com/Habib7442/apromax-admin/internal/export"
	"github.com/Habib7442/apromax-admin/internal/utils/pagination"
)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, limit int, cursorAfter string) ([]domain.Invoice, int64, error) {
	args := m.Called(ctx, limit, cursorAfter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Invoice), args.Get(1).(int64), args.Error(2)
}

func (m *MockInvoiceRepository) CountInvoices(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	args := m.Called(ctx, invoice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoiceID string, invoice domain.Invoice) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, invoice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

// --- Test Suite ---
type InvoiceServiceTestSuite struct {
	suite.Suite
	mockRepo *MockInvoiceRepository
	service  portssvc.InvoiceSvcFacade
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInvoiceRepository)
	renderer := export.NewInvoicePDF(domain.DefaultCompanyInfo())
	suite.service = services.NewInvoiceService(suite.mockRepo, renderer)
}

func validSaveRequest() dto.SaveInvoiceRequest {
	return dto.SaveInvoiceRequest{
		InvoiceDate:   "2025-06-01",
		DueDate:       "2025-07-01",
		ContactName:   "Sufian Borbhuyan",
		ContactNumber: "+91 9577291349",
		Client: dto.ClientInfoRequest{
			Name:    "Acme Industries",
			Address: "14 Market Street, Chicago",
		},
		Subject: "Structural drafting services",
		Items: []dto.LineItemRequest{
			{
				Description: "Steel detailing",
				HSNSAC:      "998333",
				Quantity:    2,
				Rate:        decimal.RequireFromString("450"),
				TaxRate:     decimal.RequireFromString("18"),
			},
		},
		PaymentMethod: "Wire Transfer",
		Currency:      domain.CurrencyUSD,
	}
}

// --- Test Cases ---

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ComputesDerivedFields() {
	ctx := context.Background()

	suite.mockRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return strings.HasPrefix(inv.InvoiceNumber, "APRO/") &&
			inv.Status == domain.InvoiceStatusDraft &&
			inv.Items[0].ID != "" &&
			inv.Items[0].Amount.Equal(decimal.RequireFromString("900")) &&
			inv.Items[0].TaxAmount.Equal(decimal.RequireFromString("162")) &&
			inv.SubTotal.Equal(decimal.RequireFromString("900")) &&
			inv.TotalTax.Equal(decimal.RequireFromString("162")) &&
			inv.Total.Equal(decimal.RequireFromString("1062")) &&
			inv.TotalInWords == "One Thousand Sixty Two Dollars" &&
			inv.BankDetails == domain.DefaultBankDetails()
	})).Return(&domain.Invoice{DocumentFields: domain.DocumentFields{ID: "inv-1"}}, nil).Once()

	created, err := suite.service.CreateInvoice(ctx, validSaveRequest())

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal("inv-1", created.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ValidationFailure() {
	ctx := context.Background()

	req := validSaveRequest()
	req.Client.Name = ""
	req.Items[0].Quantity = 0

	created, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)

	var vErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &vErr)
	suite.Contains(vErr.Messages, "Client name is required")
	suite.Contains(vErr.Messages, "Item 1: Quantity must be greater than 0")

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil, expectedErr).Once()

	created, err := suite.service.CreateInvoice(ctx, validSaveRequest())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindInvoiceByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateInvoice(ctx, "missing", validSaveRequest())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_KeepsSubmittedNumber() {
	ctx := context.Background()

	req := validSaveRequest()
	req.InvoiceNumber = "APRO/25-26/0611"

	existing := &domain.Invoice{DocumentFields: domain.DocumentFields{ID: "inv-2"}}
	suite.mockRepo.On("FindInvoiceByID", ctx, "inv-2").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateInvoice", ctx, "inv-2", mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.InvoiceNumber == "APRO/25-26/0611"
	})).Return(existing, nil).Once()

	_, err := suite.service.UpdateInvoice(ctx, "inv-2", req)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_BuildsNextCursor() {
	ctx := context.Background()

	page := []domain.Invoice{
		{DocumentFields: domain.DocumentFields{ID: "inv-1"}},
		{DocumentFields: domain.DocumentFields{ID: "inv-2"}},
	}
	suite.mockRepo.On("ListInvoices", ctx, 2, "").Return(page, int64(5), nil).Once()

	resp, err := suite.service.ListInvoices(ctx, dto.ListParams{Limit: 2})

	suite.Require().NoError(err)
	suite.Len(resp.Invoices, 2)
	suite.Equal(int64(5), resp.Total)
	suite.Require().NotEmpty(resp.NextCursor)

	docID, _, err := pagination.DecodeToken(resp.NextCursor)
	suite.Require().NoError(err)
	suite.Equal("inv-2", docID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_LastPageHasNoCursor() {
	ctx := context.Background()

	page := []domain.Invoice{{DocumentFields: domain.DocumentFields{ID: "inv-9"}}}
	suite.mockRepo.On("ListInvoices", ctx, 20, "").Return(page, int64(1), nil).Once()

	resp, err := suite.service.ListInvoices(ctx, dto.ListParams{Limit: 20})

	suite.Require().NoError(err)
	suite.Empty(resp.NextCursor)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_BadCursor() {
	ctx := context.Background()

	resp, err := suite.service.ListInvoices(ctx, dto.ListParams{Limit: 20, Cursor: "not-base64!!"})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListInvoices", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestRenderInvoicePDF() {
	ctx := context.Background()

	inv := &domain.Invoice{
		DocumentFields: domain.DocumentFields{ID: "inv-3"},
		InvoiceNumber:  "APRO/25-26/0342",
		Client:         domain.ClientInfo{Name: "Acme Industries", Address: "Chicago"},
		Items: []domain.LineItem{{
			ID: "item-1", Description: "Steel detailing", HSNSAC: "998333",
			Quantity: 2,
			Rate:     decimal.RequireFromString("450"),
			TaxRate:  decimal.RequireFromString("18"),
			TaxAmount: decimal.RequireFromString("162"),
			Amount:    decimal.RequireFromString("900"),
		}},
		SubTotal:     decimal.RequireFromString("900"),
		TotalTax:     decimal.RequireFromString("162"),
		Total:        decimal.RequireFromString("1062"),
		TotalInWords: "One Thousand Sixty Two Dollars",
		BankDetails:  domain.DefaultBankDetails(),
		Currency:     domain.CurrencyUSD,
		Status:       domain.InvoiceStatusSent,
	}
	suite.mockRepo.On("FindInvoiceByID", ctx, "inv-3").Return(inv, nil).Once()

	out, filename, err := suite.service.RenderInvoicePDF(ctx, "inv-3")

	suite.Require().NoError(err)
	suite.NotEmpty(out)
	suite.Equal("invoice-APRO-25-26-0342.pdf", filename)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteInvoice", ctx, "inv-4").Return(nil).Once()

	err := suite.service.DeleteInvoice(ctx, "inv-4")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
