// feequote prices a marketplace cart from the command line: it reads a cart
// JSON document, resolves missing vendor coordinates through the configured
// vendor directory, and prints the per-seller delivery fee breakdown. With
// -split it also divides the total between courier and platform, and with
// -courier-distance it quotes the courier fee schedule directly.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"marketfees/internal/config"
	"marketfees/internal/infra"
	"marketfees/internal/maps"
	"marketfees/internal/modules/courier"
	"marketfees/internal/modules/fees"
	"marketfees/internal/modules/geo"
	"marketfees/internal/modules/vendors"
	"marketfees/internal/obs"
	"marketfees/internal/types"
)

type cartFile struct {
	CustomerLat *float64            `json:"customer_latitude"`
	CustomerLng *float64            `json:"customer_longitude"`
	Items       []fees.CartLineItem `json:"items"`
}

type output struct {
	fees.OrderQuote
	CourierSplit *courier.Split `json:"courier_split,omitempty"`
	CourierQuote *types.Money   `json:"courier_quote,omitempty"`
}

func main() {
	cartPath := flag.String("cart", "", "path to cart JSON (default: stdin)")
	split := flag.Bool("split", false, "include the courier/platform split of the total fee")
	courierDistance := flag.Float64("courier-distance", -1, "quote the courier fee for this trip distance in km")
	priority := flag.String("priority", string(courier.PriorityStandard), "courier priority: STANDARD, EXPRESS or URGENT")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := obs.NewLogger()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	cart, err := readCart(*cartPath)
	if err != nil {
		log.Fatal(err)
	}

	locator, cleanup, err := newLocator(ctx, cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	if locator != nil {
		resolveVendors(ctx, locator, cart.Items)
	}

	feeSvc := fees.NewService(cfg.Currency, fees.NewLogEvents(logger))
	customer := geo.Coordinate{Lat: cart.CustomerLat, Lng: cart.CustomerLng}
	out := output{OrderQuote: feeSvc.QuoteOrder(cart.Items, customer)}

	courierSvc := courier.NewService(cfg.Currency)
	if *split {
		s := courierSvc.Split(types.NewMoney(out.TotalFee, out.Currency))
		out.CourierSplit = &s
	}
	if *courierDistance >= 0 {
		q := courierSvc.FeeFromDistance(courierDistance, courier.Priority(*priority))
		out.CourierQuote = &q
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}
}

func readCart(path string) (*cartFile, error) {
	in := os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open cart: %w", err)
		}
		defer f.Close()
		in = f
	}

	var cart cartFile
	if err := json.NewDecoder(in).Decode(&cart); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return &cart, nil
}

// newLocator wires the vendor resolution service from whichever backends are
// configured. Nil means the cart must carry its own vendor coordinates.
func newLocator(ctx context.Context, cfg config.Config, logger *zap.Logger) (*vendors.Service, func(), error) {
	cleanup := func() {}

	var directory vendors.Directory
	switch {
	case cfg.DB.DSN != "":
		pool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			return nil, cleanup, fmt.Errorf("connect postgres: %w", err)
		}
		cleanup = pool.Close
		directory = vendors.NewStore(pool)
	case cfg.Redis.Addr != "":
		directory = vendors.NewGeoIndex(infra.NewRedis(cfg.Redis.Addr))
	default:
		return nil, cleanup, nil
	}

	var geocoder vendors.Geocoder
	if cfg.Maps.APIKey != "" {
		g, err := maps.NewGeocodeService(cfg.Maps.APIKey)
		if err != nil {
			return nil, cleanup, err
		}
		geocoder = g
	}

	return vendors.NewService(directory, geocoder, logger), cleanup, nil
}

// resolveVendors backfills missing vendor coordinates in place. Items that
// stay unresolved fall through to the calculator's fallback fee.
func resolveVendors(ctx context.Context, locator *vendors.Service, items []fees.CartLineItem) {
	for i := range items {
		item := &items[i]
		if item.SellerID == "" || item.Vendor().Complete() {
			continue
		}
		if c := locator.Locate(ctx, item.SellerID); c.Complete() {
			item.VendorLat, item.VendorLng = c.Lat, c.Lng
		}
	}
}
