package downstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bestcars/dealership-gateway/internal/core/ports"
)

func newSearchCarsFixture(t *testing.T) (*SearchCarsClient, *string, *string) {
	t.Helper()
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"cars":[]}`))
	}))
	t.Cleanup(srv.Close)
	return NewSearchCarsClient(Config{BaseURL: srv.URL, Logger: zerolog.Nop()}), &gotPath, &gotQuery
}

func TestSearchCarsClient_DealerLookupPaths(t *testing.T) {
	client, gotPath, _ := newSearchCarsFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		call func() error
		want string
	}{
		{"all cars", func() error { _, err := client.Cars(ctx, 5); return err }, "/cars/5"},
		{"by year", func() error { _, err := client.CarsByYear(ctx, 5, "2020"); return err }, "/carsbyyear/5/2020"},
		{"by make", func() error { _, err := client.CarsByMake(ctx, 5, "Toyota"); return err }, "/carsbymake/5/Toyota"},
		{"by model", func() error { _, err := client.CarsByModel(ctx, 5, "Corolla"); return err }, "/carsbymodel/5/Corolla"},
		{"by mileage", func() error { _, err := client.CarsByMaxMileage(ctx, 5, "50000"); return err }, "/carsbymaxmileage/5/50000"},
		{"by price", func() error { _, err := client.CarsByPrice(ctx, 5, "20000"); return err }, "/carsbyprice/5/20000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.call(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *gotPath != tc.want {
				t.Fatalf("path = %q, want %q", *gotPath, tc.want)
			}
		})
	}
}

func TestSearchCarsClient_FullInventory_BareQuery(t *testing.T) {
	client, gotPath, gotQuery := newSearchCarsFixture(t)

	_, err := client.FullInventory(context.Background(), ports.InventoryQuery{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *gotPath != "/inventory/" {
		t.Fatalf("path = %q", *gotPath)
	}
	// No filters means no filter keys at all, not empty values.
	if *gotQuery != "page=1&limit=10" {
		t.Fatalf("query = %q", *gotQuery)
	}
}

func TestSearchCarsClient_FullInventory_AllFilters(t *testing.T) {
	client, _, gotQuery := newSearchCarsFixture(t)

	_, err := client.FullInventory(context.Background(), ports.InventoryQuery{
		Page: 2, Limit: 25,
		MileageMin: "1000", MileageMax: "90000",
		PriceMin: "5000", PriceMax: "40000",
		Make: "Toyota", Model: "Corolla", Year: "2021",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "page=2&limit=25&mileageMin=1000&mileageMax=90000&priceMin=5000&priceMax=40000&make=Toyota&model=Corolla&year=2021"
	if *gotQuery != want {
		t.Fatalf("query = %q, want %q", *gotQuery, want)
	}
}

func TestSearchCarsClient_MakesModels(t *testing.T) {
	client, gotPath, _ := newSearchCarsFixture(t)

	if _, err := client.MakesModels(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *gotPath != "/makes_models/" {
		t.Fatalf("path = %q", *gotPath)
	}
}
