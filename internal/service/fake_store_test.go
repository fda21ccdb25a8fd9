package service

import (
	"context"
	"errors"
	"sort"

	"github.com/RoyceAzure/lab/ordercenter/internal/infra/repository/db/sqlc"
	"github.com/jackc/pgx/v5"
)

// fakeStore 以記憶體map模擬IStore, 排序與唯一性約束跟著schema走,
// ExecTx以snapshot/restore模擬rollback
type fakeStore struct {
	branches      map[string]sqlc.Branch
	users         map[string]sqlc.User
	inventory     map[string]sqlc.InventoryItem
	orders        map[string]sqlc.Order
	orderItems    []sqlc.OrderItem
	invoices      []sqlc.OrderInvoice
	nextItemID    int64
	nextInvoiceID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		branches:      make(map[string]sqlc.Branch),
		users:         make(map[string]sqlc.User),
		inventory:     make(map[string]sqlc.InventoryItem),
		orders:        make(map[string]sqlc.Order),
		nextItemID:    1,
		nextInvoiceID: 1,
	}
}

func (f *fakeStore) snapshot() *fakeStore {
	clone := newFakeStore()
	for k, v := range f.branches {
		clone.branches[k] = v
	}
	for k, v := range f.users {
		clone.users[k] = v
	}
	for k, v := range f.inventory {
		clone.inventory[k] = v
	}
	for k, v := range f.orders {
		clone.orders[k] = v
	}
	clone.orderItems = append([]sqlc.OrderItem(nil), f.orderItems...)
	clone.invoices = append([]sqlc.OrderInvoice(nil), f.invoices...)
	clone.nextItemID = f.nextItemID
	clone.nextInvoiceID = f.nextInvoiceID
	return clone
}

func (f *fakeStore) restore(s *fakeStore) {
	f.branches = s.branches
	f.users = s.users
	f.inventory = s.inventory
	f.orders = s.orders
	f.orderItems = s.orderItems
	f.invoices = s.invoices
	f.nextItemID = s.nextItemID
	f.nextInvoiceID = s.nextInvoiceID
}

func (f *fakeStore) ExecTx(ctx context.Context, fn func(sqlc.Querier) error) error {
	saved := f.snapshot()
	if err := fn(f); err != nil {
		f.restore(saved)
		return err
	}
	return nil
}

func (f *fakeStore) ExecMultiTx(ctx context.Context, fns []func(sqlc.Querier) error) error {
	saved := f.snapshot()
	for _, fn := range fns {
		if err := fn(f); err != nil {
			f.restore(saved)
			return err
		}
	}
	return nil
}

func (f *fakeStore) CreateBranchIfNotExists(ctx context.Context, arg sqlc.CreateBranchIfNotExistsParams) error {
	if _, ok := f.branches[arg.ID]; !ok {
		f.branches[arg.ID] = sqlc.Branch(arg)
	}
	return nil
}

func (f *fakeStore) ListBranches(ctx context.Context) ([]sqlc.Branch, error) {
	branches := make([]sqlc.Branch, 0, len(f.branches))
	for _, b := range f.branches {
		branches = append(branches, b)
	}
	sort.Slice(branches, func(i, j int) bool { return branches[i].Name < branches[j].Name })
	return branches, nil
}

func (f *fakeStore) CreateInventoryItems(ctx context.Context, arg []sqlc.CreateInventoryItemsParams) (int64, error) {
	for _, p := range arg {
		if _, ok := f.inventory[p.Code]; ok {
			return 0, errors.New("duplicate key value violates unique constraint \"inventory_pkey\"")
		}
		f.inventory[p.Code] = sqlc.InventoryItem(p)
	}
	return int64(len(arg)), nil
}

func (f *fakeStore) DeleteAllInventoryItems(ctx context.Context) error {
	f.inventory = make(map[string]sqlc.InventoryItem)
	return nil
}

func (f *fakeStore) ListInventoryItems(ctx context.Context) ([]sqlc.InventoryItem, error) {
	items := make([]sqlc.InventoryItem, 0, len(f.inventory))
	for _, item := range f.inventory {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Code < items[j].Code })
	return items, nil
}

func (f *fakeStore) ListItemTypes(ctx context.Context) ([]string, error) {
	return f.distinct(func(i sqlc.InventoryItem) (string, bool) { return i.Type, true }), nil
}

func (f *fakeStore) ListItemCategories(ctx context.Context) ([]string, error) {
	return f.distinct(func(i sqlc.InventoryItem) (string, bool) { return i.Category, true }), nil
}

func (f *fakeStore) ListItemCategoriesByType(ctx context.Context, type_ string) ([]string, error) {
	return f.distinct(func(i sqlc.InventoryItem) (string, bool) { return i.Category, i.Type == type_ }), nil
}

func (f *fakeStore) distinct(pick func(sqlc.InventoryItem) (string, bool)) []string {
	seen := make(map[string]bool)
	var values []string
	for _, item := range f.inventory {
		if v, ok := pick(item); ok && !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}

func (f *fakeStore) CreateOrder(ctx context.Context, arg sqlc.CreateOrderParams) (sqlc.Order, error) {
	if _, ok := f.branches[arg.BranchID]; !ok {
		return sqlc.Order{}, errors.New("violates foreign key constraint \"orders_branch_id_fkey\"")
	}
	if _, ok := f.users[arg.UserID]; !ok {
		return sqlc.Order{}, errors.New("violates foreign key constraint \"orders_user_id_fkey\"")
	}
	order := sqlc.Order(arg)
	f.orders[arg.ID] = order
	return order, nil
}

func (f *fakeStore) GetOrder(ctx context.Context, id string) (sqlc.GetOrderRow, error) {
	order, ok := f.orders[id]
	if !ok {
		return sqlc.GetOrderRow{}, pgx.ErrNoRows
	}
	return sqlc.GetOrderRow{
		ID:         order.ID,
		BranchID:   order.BranchID,
		UserID:     order.UserID,
		Status:     order.Status,
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
		BranchName: f.branches[order.BranchID].Name,
		UserName:   f.users[order.UserID].Name,
	}, nil
}

func (f *fakeStore) ListOrders(ctx context.Context) ([]sqlc.ListOrdersRow, error) {
	rows := make([]sqlc.ListOrdersRow, 0, len(f.orders))
	for _, order := range f.orders {
		rows = append(rows, sqlc.ListOrdersRow{
			ID:         order.ID,
			BranchID:   order.BranchID,
			UserID:     order.UserID,
			Status:     order.Status,
			CreatedAt:  order.CreatedAt,
			UpdatedAt:  order.UpdatedAt,
			BranchName: f.branches[order.BranchID].Name,
			UserName:   f.users[order.UserID].Name,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
	return rows, nil
}

func (f *fakeStore) DeleteOrder(ctx context.Context, id string) error {
	delete(f.orders, id)
	return nil
}

func (f *fakeStore) TouchOrder(ctx context.Context, arg sqlc.TouchOrderParams) error {
	if order, ok := f.orders[arg.ID]; ok {
		order.UpdatedAt = arg.UpdatedAt
		f.orders[arg.ID] = order
	}
	return nil
}

func (f *fakeStore) UpdateOrderStatus(ctx context.Context, arg sqlc.UpdateOrderStatusParams) (sqlc.Order, error) {
	order, ok := f.orders[arg.ID]
	if !ok {
		return sqlc.Order{}, pgx.ErrNoRows
	}
	order.Status = arg.Status
	order.UpdatedAt = arg.UpdatedAt
	f.orders[arg.ID] = order
	return order, nil
}

func (f *fakeStore) CreateOrderItems(ctx context.Context, arg []sqlc.CreateOrderItemsParams) (int64, error) {
	for _, p := range arg {
		for _, existing := range f.orderItems {
			if existing.OrderID == p.OrderID && existing.ItemCode == p.ItemCode {
				return 0, errors.New("duplicate key value violates unique constraint \"order_items_order_id_item_code_key\"")
			}
		}
		f.orderItems = append(f.orderItems, sqlc.OrderItem{
			ID:       f.nextItemID,
			OrderID:  p.OrderID,
			ItemCode: p.ItemCode,
			Quantity: p.Quantity,
		})
		f.nextItemID++
	}
	return int64(len(arg)), nil
}

func (f *fakeStore) DeleteOrderItemsByOrder(ctx context.Context, orderID string) error {
	kept := f.orderItems[:0]
	for _, item := range f.orderItems {
		if item.OrderID != orderID {
			kept = append(kept, item)
		}
	}
	f.orderItems = kept
	return nil
}

func (f *fakeStore) orderItemRow(item sqlc.OrderItem) sqlc.ListAllOrderItemsRow {
	row := sqlc.ListAllOrderItemsRow{
		OrderID:  item.OrderID,
		ItemCode: item.ItemCode,
		Quantity: item.Quantity,
	}
	if inv, ok := f.inventory[item.ItemCode]; ok {
		row.Code.String = inv.Code
		row.Code.Valid = true
		row.Remark = inv.Remark
		row.Type.String = inv.Type
		row.Type.Valid = true
		row.Category.String = inv.Category
		row.Category.Valid = true
		row.Description.String = inv.Description
		row.Description.Valid = true
		row.Units.String = inv.Units
		row.Units.Valid = true
		row.Packing = inv.Packing
	}
	return row
}

func (f *fakeStore) ListAllOrderItems(ctx context.Context) ([]sqlc.ListAllOrderItemsRow, error) {
	rows := make([]sqlc.ListAllOrderItemsRow, 0, len(f.orderItems))
	for _, item := range f.orderItems {
		rows = append(rows, f.orderItemRow(item))
	}
	return rows, nil
}

func (f *fakeStore) ListOrderItemsByOrder(ctx context.Context, orderID string) ([]sqlc.ListOrderItemsByOrderRow, error) {
	var rows []sqlc.ListOrderItemsByOrderRow
	for _, item := range f.orderItems {
		if item.OrderID == orderID {
			rows = append(rows, sqlc.ListOrderItemsByOrderRow(f.orderItemRow(item)))
		}
	}
	return rows, nil
}

func (f *fakeStore) CreateInvoice(ctx context.Context, arg sqlc.CreateInvoiceParams) (sqlc.OrderInvoice, error) {
	if _, ok := f.orders[arg.OrderID]; !ok {
		return sqlc.OrderInvoice{}, errors.New("violates foreign key constraint \"order_invoices_order_id_fkey\"")
	}
	invoice := sqlc.OrderInvoice{
		ID:         f.nextInvoiceID,
		OrderID:    arg.OrderID,
		FileName:   arg.FileName,
		DataUrl:    arg.DataUrl,
		UploadedAt: arg.UploadedAt,
	}
	f.nextInvoiceID++
	f.invoices = append(f.invoices, invoice)
	return invoice, nil
}

func (f *fakeStore) DeleteInvoice(ctx context.Context, arg sqlc.DeleteInvoiceParams) (int64, error) {
	var deleted int64
	kept := f.invoices[:0]
	for _, invoice := range f.invoices {
		if invoice.ID == arg.ID && invoice.OrderID == arg.OrderID {
			deleted++
			continue
		}
		kept = append(kept, invoice)
	}
	f.invoices = kept
	return deleted, nil
}

func (f *fakeStore) ListAllInvoices(ctx context.Context) ([]sqlc.OrderInvoice, error) {
	rows := append([]sqlc.OrderInvoice(nil), f.invoices...)
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].OrderID != rows[j].OrderID {
			return rows[i].OrderID < rows[j].OrderID
		}
		return rows[i].ID < rows[j].ID
	})
	return rows, nil
}

func (f *fakeStore) ListInvoicesByOrder(ctx context.Context, orderID string) ([]sqlc.OrderInvoice, error) {
	var rows []sqlc.OrderInvoice
	for _, invoice := range f.invoices {
		if invoice.OrderID == orderID {
			rows = append(rows, invoice)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}

func (f *fakeStore) CreateUser(ctx context.Context, arg sqlc.CreateUserParams) (sqlc.User, error) {
	for _, u := range f.users {
		if u.Username == arg.Username {
			return sqlc.User{}, errors.New("duplicate key value violates unique constraint \"users_username_key\"")
		}
	}
	user := sqlc.User(arg)
	f.users[arg.ID] = user
	return user, nil
}

func (f *fakeStore) CreateUserIfNotExists(ctx context.Context, arg sqlc.CreateUserIfNotExistsParams) error {
	for _, u := range f.users {
		if u.Username == arg.Username {
			return nil
		}
	}
	if _, ok := f.users[arg.ID]; ok {
		return nil
	}
	f.users[arg.ID] = sqlc.User(arg)
	return nil
}

func (f *fakeStore) DeleteUser(ctx context.Context, id string) error {
	delete(f.users, id)
	return nil
}

func (f *fakeStore) GetUserByID(ctx context.Context, id string) (sqlc.User, error) {
	user, ok := f.users[id]
	if !ok {
		return sqlc.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (f *fakeStore) GetUserByUsername(ctx context.Context, username string) (sqlc.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return sqlc.User{}, pgx.ErrNoRows
}

func (f *fakeStore) ListUsers(ctx context.Context) ([]sqlc.User, error) {
	users := make([]sqlc.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}
