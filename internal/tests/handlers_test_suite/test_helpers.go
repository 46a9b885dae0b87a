package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	api "github.com/warehouse-kit/inventory-api/internal/http"
	handler "github.com/warehouse-kit/inventory-api/internal/http/handlers"
	"github.com/warehouse-kit/inventory-api/internal/inventory"
	"github.com/warehouse-kit/inventory-api/internal/repo"
)

// newRouter wires the handlers against fresh in-memory repositories and
// returns the API router. Each test gets isolated state.
func newRouter() http.Handler {
	return newRouterWithPolicy(inventory.DeleteRetainHistory)
}

func newRouterWithPolicy(policy inventory.DeletePolicy) http.Handler {
	items := repo.NewInMemoryItemRepository()
	ledger := repo.NewInMemoryLedgerRepository()
	store := repo.NewInMemoryStockStore(items, ledger)
	locks := inventory.NewItemLocks()

	handler.SetItemRepo(items)
	handler.SetLedgerRepo(ledger)
	handler.SetProcessor(inventory.NewProcessor(items, store, locks))
	handler.SetReporter(inventory.NewReporter(items, ledger, policy, nil, locks))

	return api.NewRouter()
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createItem(r http.Handler, req handler.ItemRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/api/items", req)
}

func applyOperation(r http.Handler, itemID int, req handler.OperationRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, fmt.Sprintf("/api/items/%d/operation", itemID), req)
}
