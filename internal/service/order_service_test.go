package service

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"kitchen-drone/internal/domain"
	"kitchen-drone/internal/repository"
)

func setup(t *testing.T) (*OrderService, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	return NewOrderService(store), store
}

func validRequest() domain.PlaceOrderRequest {
	return domain.PlaceOrderRequest{
		Items: []domain.CartLine{{ID: "1", Name: "Naan", Price: 49, Quantity: 2}},
		CustomerInfo: domain.CustomerInfo{
			Name: "John", Email: "john@example.com", Phone: "1234567890",
			Address: "12 Main St", Pincode: "590018",
		},
	}
}

func TestPlaceOrder_Valid(t *testing.T) {
	ctx := context.Background()
	svc, store := setup(t)

	id, err := svc.PlaceOrder(ctx, validRequest())
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if !strings.HasPrefix(id, "ORD-") {
		t.Fatalf("unexpected id format: %s", id)
	}

	list, _ := store.List(ctx)
	if len(list) != 1 {
		t.Fatalf("expected 1 order stored, got %d", len(list))
	}
	if list[0].ID != id {
		t.Fatalf("stored id %s, returned %s", list[0].ID, id)
	}
	if list[0].Total != 98 {
		t.Fatalf("total expected 98, got %v", list[0].Total)
	}
	if list[0].Timestamp == "" {
		t.Fatalf("timestamp not set")
	}
}

func TestPlaceOrder_DistinctIDs(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		id, err := svc.PlaceOrder(ctx, validRequest())
		if err != nil {
			t.Fatalf("place order: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate id: %s", id)
		}
		seen[id] = true
	}
}

func TestPlaceOrder_BadPincode(t *testing.T) {
	ctx := context.Background()
	svc, store := setup(t)

	req := validRequest()
	req.CustomerInfo.Pincode = "999999"
	if _, err := svc.PlaceOrder(ctx, req); err != ErrUnserviceable {
		t.Fatalf("expected ErrUnserviceable, got %v", err)
	}

	req.CustomerInfo.Pincode = ""
	if _, err := svc.PlaceOrder(ctx, req); err != ErrUnserviceable {
		t.Fatalf("expected ErrUnserviceable for missing pincode, got %v", err)
	}

	// store untouched
	list, _ := store.List(ctx)
	if len(list) != 0 {
		t.Fatalf("store should be empty, got %d orders", len(list))
	}
}

func TestPlaceOrder_NoItems(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t)

	req := validRequest()
	req.Items = nil
	if _, err := svc.PlaceOrder(ctx, req); err != ErrNoOrderData {
		t.Fatalf("expected ErrNoOrderData, got %v", err)
	}
}

func TestPlaceOrder_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t)

	req := validRequest()
	req.CustomerInfo.Notes = "ring the bell"
	id, err := svc.PlaceOrder(ctx, req)
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	list, err := svc.ListOrders(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := list[0]
	if got.ID != id {
		t.Fatalf("id mismatch: %s vs %s", got.ID, id)
	}
	if !reflect.DeepEqual(got.Items, req.Items) {
		t.Fatalf("items not stored verbatim: %+v vs %+v", got.Items, req.Items)
	}
	if got.CustomerInfo != req.CustomerInfo {
		t.Fatalf("customer info not stored verbatim: %+v vs %+v", got.CustomerInfo, req.CustomerInfo)
	}
}

func TestDeleteOrder_Twice(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t)

	id, err := svc.PlaceOrder(ctx, validRequest())
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if err := svc.DeleteOrder(ctx, id); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.DeleteOrder(ctx, id); err != repository.ErrNotFound {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestListOrders_AfterDeletions(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t)

	ids := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		id, err := svc.PlaceOrder(ctx, validRequest())
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}
	if err := svc.DeleteOrder(ctx, ids[1]); err != nil {
		t.Fatal(err)
	}

	list, err := svc.ListOrders(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{ids[0], ids[2], ids[3]}
	if len(list) != len(want) {
		t.Fatalf("expected %d orders, got %d", len(want), len(list))
	}
	for i, id := range want {
		if list[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, list[i].ID)
		}
	}
}

func TestGenerateOrderID_Format(t *testing.T) {
	id := generateOrderID()
	parts := strings.Split(id, "-")
	if len(parts) != 3 || parts[0] != "ORD" {
		t.Fatalf("unexpected id: %s", id)
	}
	if len(parts[1]) != 12 {
		t.Fatalf("timestamp component should be yyyymmddhhmm: %s", parts[1])
	}
	if len(parts[2]) != 8 {
		t.Fatalf("unique suffix should be 8 chars: %s", parts[2])
	}
}
