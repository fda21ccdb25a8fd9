package service

import (
	"context"

	"github.com/RoyceAzure/lab/ordercenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/ordercenter/internal/model"
)

type IBranchService interface {
	ListBranches(ctx context.Context) ([]model.BranchModel, error)
}

type BranchService struct {
	dbDao db.IStore
}

func NewBranchService(dbDao db.IStore) IBranchService {
	return &BranchService{
		dbDao: dbDao,
	}
}

func (b *BranchService) ListBranches(ctx context.Context) ([]model.BranchModel, error) {
	rows, err := b.dbDao.ListBranches(ctx)
	if err != nil {
		return nil, err
	}

	branches := make([]model.BranchModel, 0, len(rows))
	for _, r := range rows {
		branches = append(branches, model.BranchModel{ID: r.ID, Name: r.Name})
	}
	return branches, nil
}
