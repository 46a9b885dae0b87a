package handlers

import (
	"github.com/warehouse-kit/inventory-api/internal/inventory"
	"github.com/warehouse-kit/inventory-api/internal/repo"
)

var (
	itemRepo   repo.ItemRepository
	ledgerRepo repo.LedgerRepository
	processor  *inventory.Processor
	reporter   *inventory.Reporter
)

func SetItemRepo(r repo.ItemRepository) {
	itemRepo = r
}

func SetLedgerRepo(r repo.LedgerRepository) {
	ledgerRepo = r
}

func SetProcessor(p *inventory.Processor) {
	processor = p
}

func SetReporter(r *inventory.Reporter) {
	reporter = r
}
