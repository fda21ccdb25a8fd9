package service

import (
	"context"
	"io"

	"github.com/RoyceAzure/lab/ordercenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/ordercenter/internal/infra/repository/db/sqlc"
	"github.com/RoyceAzure/lab/ordercenter/internal/model"
	"github.com/RoyceAzure/lab/ordercenter/internal/parsers"
	"github.com/RoyceAzure/lab/ordercenter/internal/pkg/apiutil"
	"github.com/RoyceAzure/lab/ordercenter/internal/pkg/pgutil"
)

// ErrEmptyImport 上傳檔沒有任何有效資料行, caller以此決定顯示警告
var ErrEmptyImport = apiutil.New(apiutil.BadRequestCode, "import contains no valid rows, catalog left unchanged")

type IInventoryService interface {
	ListInventory(ctx context.Context) ([]model.InventoryItemModel, error)
	ListItemTypes(ctx context.Context) ([]string, error)
	ListItemCategories(ctx context.Context, itemType string) ([]string, error)
	ReplaceInventory(ctx context.Context, items []model.InventoryItemModel) ([]model.InventoryItemModel, error)
	ImportInventoryCSV(ctx context.Context, r io.Reader) ([]model.InventoryItemModel, error)
}

type InventoryService struct {
	dbDao db.IStore
}

func NewInventoryService(dbDao db.IStore) IInventoryService {
	return &InventoryService{
		dbDao: dbDao,
	}
}

func (s *InventoryService) ListInventory(ctx context.Context) ([]model.InventoryItemModel, error) {
	rows, err := s.dbDao.ListInventoryItems(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]model.InventoryItemModel, 0, len(rows))
	for _, r := range rows {
		items = append(items, convertInventoryItemToModel(r))
	}
	return items, nil
}

func (s *InventoryService) ListItemTypes(ctx context.Context) ([]string, error) {
	return s.dbDao.ListItemTypes(ctx)
}

// itemType為空字串時回傳所有category
func (s *InventoryService) ListItemCategories(ctx context.Context, itemType string) ([]string, error) {
	if itemType == "" {
		return s.dbDao.ListItemCategories(ctx)
	}
	return s.dbDao.ListItemCategoriesByType(ctx, itemType)
}

// ReplaceInventory 全量替換catalog: delete-all + bulk-insert, 單一交易
// 空集合是明確的no-op guard, 不能讓一次空上傳把catalog清掉
// 既有order對被移除code的引用不做清理
func (s *InventoryService) ReplaceInventory(ctx context.Context, items []model.InventoryItemModel) ([]model.InventoryItemModel, error) {
	if len(items) == 0 {
		return s.ListInventory(ctx)
	}

	err := s.dbDao.ExecTx(ctx, func(q sqlc.Querier) error {
		if err := q.DeleteAllInventoryItems(ctx); err != nil {
			return err
		}
		_, err := q.CreateInventoryItems(ctx, convertInventoryModelsToRepo(items))
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.ListInventory(ctx)
}

// ImportInventoryCSV 解析tab分隔上傳檔後全量替換
// 解析出零筆時回傳ErrEmptyImport並保持catalog不變
func (s *InventoryService) ImportInventoryCSV(ctx context.Context, r io.Reader) ([]model.InventoryItemModel, error) {
	items, err := parsers.ParseInventoryCSV(r)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyImport
	}
	return s.ReplaceInventory(ctx, items)
}

func convertInventoryItemToModel(r sqlc.InventoryItem) model.InventoryItemModel {
	return model.InventoryItemModel{
		Code:        r.Code,
		Remark:      pgutil.PgTextToString(r.Remark),
		Type:        r.Type,
		Category:    r.Category,
		Description: r.Description,
		Units:       r.Units,
		Packing:     pgutil.PgNumericToDecimal(r.Packing),
	}
}

func convertInventoryModelsToRepo(items []model.InventoryItemModel) []sqlc.CreateInventoryItemsParams {
	rows := make([]sqlc.CreateInventoryItemsParams, len(items))
	for i, item := range items {
		rows[i] = sqlc.CreateInventoryItemsParams{
			Code:        item.Code,
			Remark:      pgutil.StringToPgText(item.Remark),
			Type:        item.Type,
			Category:    item.Category,
			Description: item.Description,
			Units:       item.Units,
			Packing:     pgutil.DecimalToPgNumeric(item.Packing),
		}
	}
	return rows
}
