package handler_test

import (
	"context"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/RoyceAzure/lab/ordercenter/internal/api"
	"github.com/RoyceAzure/lab/ordercenter/internal/api/handler"
	"github.com/RoyceAzure/lab/ordercenter/internal/api/router"
	"github.com/RoyceAzure/lab/ordercenter/internal/model"
	"github.com/rs/zerolog"
)

// service層的stub, 每個方法都可以在個別測試內替換

type stubBranchService struct {
	listBranches func(ctx context.Context) ([]model.BranchModel, error)
}

func (s *stubBranchService) ListBranches(ctx context.Context) ([]model.BranchModel, error) {
	return s.listBranches(ctx)
}

type stubInventoryService struct {
	listInventory      func(ctx context.Context) ([]model.InventoryItemModel, error)
	listItemTypes      func(ctx context.Context) ([]string, error)
	listItemCategories func(ctx context.Context, itemType string) ([]string, error)
	replaceInventory   func(ctx context.Context, items []model.InventoryItemModel) ([]model.InventoryItemModel, error)
	importInventoryCSV func(ctx context.Context, r io.Reader) ([]model.InventoryItemModel, error)
}

func (s *stubInventoryService) ListInventory(ctx context.Context) ([]model.InventoryItemModel, error) {
	return s.listInventory(ctx)
}

func (s *stubInventoryService) ListItemTypes(ctx context.Context) ([]string, error) {
	return s.listItemTypes(ctx)
}

func (s *stubInventoryService) ListItemCategories(ctx context.Context, itemType string) ([]string, error) {
	return s.listItemCategories(ctx, itemType)
}

func (s *stubInventoryService) ReplaceInventory(ctx context.Context, items []model.InventoryItemModel) ([]model.InventoryItemModel, error) {
	return s.replaceInventory(ctx, items)
}

func (s *stubInventoryService) ImportInventoryCSV(ctx context.Context, r io.Reader) ([]model.InventoryItemModel, error) {
	return s.importInventoryCSV(ctx, r)
}

type stubOrderService struct {
	create        func(ctx context.Context, branchID, userID string, items []model.CreateOrderItemModel) (*model.OrderModel, error)
	get           func(ctx context.Context, orderID string) (*model.OrderModel, error)
	list          func(ctx context.Context) ([]model.OrderModel, error)
	setStatus     func(ctx context.Context, orderID string, status model.OrderStatus) (*model.OrderModel, error)
	replaceItems  func(ctx context.Context, orderID string, items []model.CreateOrderItemModel) (*model.OrderModel, error)
	addInvoice    func(ctx context.Context, orderID, fileName, dataURL string) (*model.OrderModel, error)
	removeInvoice func(ctx context.Context, orderID string, invoiceID int64) (*model.OrderModel, error)
}

func (s *stubOrderService) Create(ctx context.Context, branchID, userID string, items []model.CreateOrderItemModel) (*model.OrderModel, error) {
	return s.create(ctx, branchID, userID, items)
}

func (s *stubOrderService) Get(ctx context.Context, orderID string) (*model.OrderModel, error) {
	return s.get(ctx, orderID)
}

func (s *stubOrderService) List(ctx context.Context) ([]model.OrderModel, error) {
	return s.list(ctx)
}

func (s *stubOrderService) SetStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.OrderModel, error) {
	return s.setStatus(ctx, orderID, status)
}

func (s *stubOrderService) ReplaceItems(ctx context.Context, orderID string, items []model.CreateOrderItemModel) (*model.OrderModel, error) {
	return s.replaceItems(ctx, orderID, items)
}

func (s *stubOrderService) AddInvoice(ctx context.Context, orderID, fileName, dataURL string) (*model.OrderModel, error) {
	return s.addInvoice(ctx, orderID, fileName, dataURL)
}

func (s *stubOrderService) RemoveInvoice(ctx context.Context, orderID string, invoiceID int64) (*model.OrderModel, error) {
	return s.removeInvoice(ctx, orderID, invoiceID)
}

type stubUserService struct {
	listUsers         func(ctx context.Context) ([]model.UserModel, error)
	getUserByUsername func(ctx context.Context, username string) (*model.UserModel, error)
	createUser        func(ctx context.Context, arg *model.CreateUserModel) (*model.UserModel, error)
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]model.UserModel, error) {
	return s.listUsers(ctx)
}

func (s *stubUserService) GetUserByUsername(ctx context.Context, username string) (*model.UserModel, error) {
	return s.getUserByUsername(ctx, username)
}

func (s *stubUserService) CreateUser(ctx context.Context, arg *model.CreateUserModel) (*model.UserModel, error) {
	return s.createUser(ctx, arg)
}

type stubAuthService struct {
	login func(ctx context.Context, username, password string) (*model.UserModel, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*model.UserModel, error) {
	return s.login(ctx, username, password)
}

type stubServices struct {
	branch    *stubBranchService
	inventory *stubInventoryService
	order     *stubOrderService
	user      *stubUserService
	auth      *stubAuthService
}

func newStubServices() *stubServices {
	return &stubServices{
		branch:    &stubBranchService{},
		inventory: &stubInventoryService{},
		order:     &stubOrderService{},
		user:      &stubUserService{},
		auth:      &stubAuthService{},
	}
}

// newTestServer 組出跟正式環境相同路由的server
func newTestServer(t *testing.T, stubs *stubServices) *httptest.Server {
	t.Helper()

	server := api.NewServer(
		handler.NewAppDataHandler(stubs.branch, stubs.inventory, stubs.order, stubs.user),
		handler.NewOrderHandler(stubs.order),
		handler.NewInventoryHandler(stubs.inventory, stubs.order),
		handler.NewAuthHandler(stubs.auth),
	)

	logger := zerolog.New(os.Stdout).Level(zerolog.Disabled)
	ts := httptest.NewServer(router.SetupRouter(server, &logger))
	t.Cleanup(ts.Close)
	return ts
}
