package service

import (
	"context"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/ordercenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/ordercenter/internal/infra/repository/db/sqlc"
	"github.com/RoyceAzure/lab/ordercenter/internal/model"
	"github.com/RoyceAzure/lab/ordercenter/internal/pkg/apiutil"
	"github.com/RoyceAzure/lab/ordercenter/internal/pkg/pgutil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type IOrderService interface {
	Create(ctx context.Context, branchID, userID string, items []model.CreateOrderItemModel) (*model.OrderModel, error)
	Get(ctx context.Context, orderID string) (*model.OrderModel, error)
	List(ctx context.Context) ([]model.OrderModel, error)
	SetStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.OrderModel, error)
	ReplaceItems(ctx context.Context, orderID string, items []model.CreateOrderItemModel) (*model.OrderModel, error)
	AddInvoice(ctx context.Context, orderID, fileName, dataURL string) (*model.OrderModel, error)
	RemoveInvoice(ctx context.Context, orderID string, invoiceID int64) (*model.OrderModel, error)
}

type OrderService struct {
	dbDao db.IStore
}

func NewOrderService(dbDao db.IStore) IOrderService {
	return &OrderService{
		dbDao: dbDao,
	}
}

var errOrderNotFound = errors.New("order not found")

// Create 建立新order, 狀態固定為Pending, order row與item rows在同一個交易內,
// 任一item寫入失敗整筆rollback
func (o *OrderService) Create(ctx context.Context, branchID, userID string, items []model.CreateOrderItemModel) (*model.OrderModel, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	err := o.dbDao.ExecTx(ctx, func(q sqlc.Querier) error {
		_, err := q.CreateOrder(ctx, sqlc.CreateOrderParams{
			ID:        id,
			BranchID:  branchID,
			UserID:    userID,
			Status:    string(model.OrderStatusPending),
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return err
		}
		if len(items) > 0 {
			_, err = q.CreateOrderItems(ctx, convertCreateItemsToRepo(id, items))
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return o.Get(ctx, id)
}

// Get 回傳join過的order(branch/user名稱, item快照, invoices), 找不到回傳nil而非錯誤
func (o *OrderService) Get(ctx context.Context, orderID string) (*model.OrderModel, error) {
	row, err := o.dbDao.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	itemRows, err := o.dbDao.ListOrderItemsByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	invoiceRows, err := o.dbDao.ListInvoicesByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	order := convertOrderRowToModel(sqlc.ListOrdersRow(row))
	for _, r := range itemRows {
		order.Items = append(order.Items, convertOrderItemRowToModel(sqlc.ListAllOrderItemsRow(r)))
	}
	for _, r := range invoiceRows {
		order.Invoices = append(order.Invoices, convertInvoiceToModel(r))
	}
	return &order, nil
}

// List 回傳全部order, created_at由新到舊
func (o *OrderService) List(ctx context.Context) ([]model.OrderModel, error) {
	orderRows, err := o.dbDao.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	itemRows, err := o.dbDao.ListAllOrderItems(ctx)
	if err != nil {
		return nil, err
	}

	invoiceRows, err := o.dbDao.ListAllInvoices(ctx)
	if err != nil {
		return nil, err
	}

	itemsByOrder := make(map[string][]model.OrderItemModel)
	for _, r := range itemRows {
		itemsByOrder[r.OrderID] = append(itemsByOrder[r.OrderID], convertOrderItemRowToModel(r))
	}
	invoicesByOrder := make(map[string][]model.InvoiceModel)
	for _, r := range invoiceRows {
		invoicesByOrder[r.OrderID] = append(invoicesByOrder[r.OrderID], convertInvoiceToModel(r))
	}

	orders := make([]model.OrderModel, 0, len(orderRows))
	for _, r := range orderRows {
		order := convertOrderRowToModel(r)
		order.Items = itemsByOrder[r.ID]
		order.Invoices = invoicesByOrder[r.ID]
		orders = append(orders, order)
	}
	return orders, nil
}

// SetStatus 無條件更新狀態與updated_at, 不驗證狀態轉換(六個狀態間全連通),
// 找不到order回傳nil
func (o *OrderService) SetStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.OrderModel, error) {
	if !model.IsValidOrderStatus(string(status)) {
		return nil, apiutil.New(apiutil.BadRequestCode, "invalid order status: "+string(status))
	}

	_, err := o.dbDao.UpdateOrderStatus(ctx, sqlc.UpdateOrderStatusParams{
		ID:        orderID,
		Status:    string(status),
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return o.Get(ctx, orderID)
}

// ReplaceItems 全量替換order的item rows: delete-all + bulk-insert, 單一交易
// 空集合是合法輸入, 會清空order (與catalog的空集合no-op guard不同)
func (o *OrderService) ReplaceItems(ctx context.Context, orderID string, items []model.CreateOrderItemModel) (*model.OrderModel, error) {
	now := time.Now().UTC()

	err := o.dbDao.ExecTx(ctx, func(q sqlc.Querier) error {
		if _, err := q.GetOrder(ctx, orderID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errOrderNotFound
			}
			return err
		}
		if err := q.DeleteOrderItemsByOrder(ctx, orderID); err != nil {
			return err
		}
		if len(items) > 0 {
			if _, err := q.CreateOrderItems(ctx, convertCreateItemsToRepo(orderID, items)); err != nil {
				return err
			}
		}
		return q.TouchOrder(ctx, sqlc.TouchOrderParams{ID: orderID, UpdatedAt: now})
	})
	if err != nil {
		if errors.Is(err, errOrderNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return o.Get(ctx, orderID)
}

// AddInvoice 寫入invoice row後touch updated_at
// 兩個statement刻意不包在同一交易: touch失敗不構成使用者可見的資料遺失
func (o *OrderService) AddInvoice(ctx context.Context, orderID, fileName, dataURL string) (*model.OrderModel, error) {
	now := time.Now().UTC()

	_, err := o.dbDao.CreateInvoice(ctx, sqlc.CreateInvoiceParams{
		OrderID:    orderID,
		FileName:   fileName,
		DataUrl:    dataURL,
		UploadedAt: now,
	})
	if err != nil {
		return nil, err
	}

	if err := o.dbDao.TouchOrder(ctx, sqlc.TouchOrderParams{ID: orderID, UpdatedAt: now}); err != nil {
		return nil, err
	}

	return o.Get(ctx, orderID)
}

// RemoveInvoice 刪除同時以invoice id與order id限定的row, 防止跨order誤刪
// 刪除不存在的invoice是no-op, 不是錯誤
func (o *OrderService) RemoveInvoice(ctx context.Context, orderID string, invoiceID int64) (*model.OrderModel, error) {
	rows, err := o.dbDao.DeleteInvoice(ctx, sqlc.DeleteInvoiceParams{
		ID:      invoiceID,
		OrderID: orderID,
	})
	if err != nil {
		return nil, err
	}

	if rows > 0 {
		if err := o.dbDao.TouchOrder(ctx, sqlc.TouchOrderParams{ID: orderID, UpdatedAt: time.Now().UTC()}); err != nil {
			return nil, err
		}
	}

	return o.Get(ctx, orderID)
}

func convertCreateItemsToRepo(orderID string, items []model.CreateOrderItemModel) []sqlc.CreateOrderItemsParams {
	rows := make([]sqlc.CreateOrderItemsParams, len(items))
	for i, item := range items {
		rows[i] = sqlc.CreateOrderItemsParams{
			OrderID:  orderID,
			ItemCode: item.ItemCode,
			Quantity: item.Quantity,
		}
	}
	return rows
}

func convertOrderRowToModel(r sqlc.ListOrdersRow) model.OrderModel {
	return model.OrderModel{
		ID:         r.ID,
		BranchID:   r.BranchID,
		BranchName: r.BranchName,
		UserID:     r.UserID,
		UserName:   r.UserName,
		Status:     model.OrderStatus(r.Status),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// LEFT JOIN inventory的row, catalog被替換掉的code快照為nil
func convertOrderItemRowToModel(r sqlc.ListAllOrderItemsRow) model.OrderItemModel {
	item := model.OrderItemModel{
		ItemCode: r.ItemCode,
		Quantity: r.Quantity,
	}
	if r.Code.Valid {
		item.Item = &model.InventoryItemModel{
			Code:        r.Code.String,
			Remark:      pgutil.PgTextToString(r.Remark),
			Type:        r.Type.String,
			Category:    r.Category.String,
			Description: r.Description.String,
			Units:       r.Units.String,
			Packing:     pgutil.PgNumericToDecimal(r.Packing),
		}
	}
	return item
}

func convertInvoiceToModel(r sqlc.OrderInvoice) model.InvoiceModel {
	return model.InvoiceModel{
		ID:         r.ID,
		OrderID:    r.OrderID,
		FileName:   r.FileName,
		DataURL:    r.DataUrl,
		UploadedAt: r.UploadedAt,
	}
}
