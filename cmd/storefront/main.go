package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stylecart/storefront/internal/cart"
	"github.com/stylecart/storefront/internal/catalog"
	"github.com/stylecart/storefront/internal/checkout"
	"github.com/stylecart/storefront/internal/filters"
	"github.com/stylecart/storefront/internal/notifications"
	"github.com/stylecart/storefront/internal/orders"
	"github.com/stylecart/storefront/internal/pricing"
	"github.com/stylecart/storefront/internal/profile"
	"github.com/stylecart/storefront/pkg/config"
	"github.com/stylecart/storefront/pkg/currency"
	"github.com/stylecart/storefront/pkg/enums"
	"github.com/stylecart/storefront/pkg/kvstore"
	"github.com/stylecart/storefront/pkg/logger"
	"github.com/stylecart/storefront/pkg/metrics"
	"github.com/stylecart/storefront/pkg/types"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	_ = godotenv.Load()

	cmd := flag.String("cmd", "list", "command: list|search|cart|add|qty|remove|clear|orders|checkout|currency")

	// list filters
	category := flag.String("category", "all", "category filter: all|men|women|accessories")
	minPrice := flag.Int64("min", 0, "minimum price")
	maxPrice := flag.Int64("max", 50000, "maximum price")
	minRating := flag.Float64("rating", 0, "minimum rating")
	sortKey := flag.String("sort", "featured", "sort: featured|price-low|price-high|rating|newest|popular")

	// search
	term := flag.String("term", "", "search term")

	// cart mutations
	productID := flag.Int("id", 0, "product id")
	delta := flag.Int("delta", 1, "quantity delta for -cmd=qty")

	// currency
	curCode := flag.String("currency", "", "display currency: PKR|USD|EUR|GBP|AED")

	// checkout form
	firstName := flag.String("first", "", "first name")
	lastName := flag.String("last", "", "last name")
	email := flag.String("email", "", "email address")
	phone := flag.String("phone", "", "phone number")
	address := flag.String("address", "", "street address")
	city := flag.String("city", "", "city")
	state := flag.String("state", "", "state or province")
	zip := flag.String("zip", "", "postal code")
	country := flag.String("country", "", "country")
	payment := flag.String("payment", "card", "payment method: card|paypal|cod|upi")
	agree := flag.Bool("agree", false, "accept terms and conditions")

	flag.Parse()

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	kv, err := kvstore.Open(ctx, cfg.Storage, logg)
	requireResource(ctx, logg, "storage", err)
	defer func() {
		if closer, ok := kv.(kvstore.Closer); ok {
			if err := closer.Close(); err != nil {
				logg.Error(ctx, "error closing storage", err)
			}
		}
	}()

	products := catalog.Default()
	reg := prometheus.NewRegistry()
	storeMetrics := metrics.NewStorefrontMetrics(reg)
	notifier := notifications.NewLogNotifier(logg)

	cartStore, err := cart.NewStore(cart.StoreParams{
		KV:       kv,
		Catalog:  products,
		Logger:   logg,
		Notifier: notifier,
		Metrics:  storeMetrics,
	})
	requireResource(ctx, logg, "cart store", err)
	requireResource(ctx, logg, "cart state", cartStore.Load(ctx))

	calc, err := pricing.NewCalculator(cfg.Pricing)
	requireResource(ctx, logg, "calculator", err)

	orderLog, err := orders.NewLog(kv, logg)
	requireResource(ctx, logg, "order log", err)

	profileStore, err := profile.NewStore(kv, logg)
	requireResource(ctx, logg, "profile store", err)

	fallback, err := enums.ParseCurrency(cfg.Currency.Default)
	requireResource(ctx, logg, "default currency", err)

	preference, err := currency.NewPreference(kv, fallback)
	requireResource(ctx, logg, "currency preference", err)

	converter := currency.NewConverter()
	display := preference.Load(ctx)

	switch *cmd {
	case "list":
		filterCfg := filters.DefaultConfig()
		filterCfg.Category = *category
		filterCfg.PriceMin = *minPrice
		filterCfg.PriceMax = *maxPrice
		filterCfg.MinRating = *minRating
		key, err := enums.ParseSortKey(*sortKey)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid sort: %v\n", err)
			os.Exit(1)
		}
		filterCfg.SortBy = key
		printProducts(converter, display, filters.Apply(products.List(), filterCfg))

	case "search":
		printProducts(converter, display, products.Search(*term))

	case "cart":
		printCart(converter, display, cartStore, calc)

	case "add":
		exitOnError(cartStore.AddItem(ctx, *productID))
		printCart(converter, display, cartStore, calc)

	case "qty":
		exitOnError(cartStore.ChangeQuantity(ctx, *productID, *delta))
		printCart(converter, display, cartStore, calc)

	case "remove":
		exitOnError(cartStore.RemoveItem(ctx, *productID))
		printCart(converter, display, cartStore, calc)

	case "clear":
		exitOnError(cartStore.Clear(ctx))

	case "orders":
		history, err := orderLog.List(ctx)
		exitOnError(err)
		if len(history) == 0 {
			fmt.Println("no orders yet")
			return
		}
		for _, order := range history {
			total, err := converter.FormatPrice(order.Total, display)
			exitOnError(err)
			fmt.Printf("%s  %s  %s  %s  %d item(s)  %s\n",
				order.ID,
				order.CreatedAt.Format("2006-01-02 15:04"),
				order.Status,
				order.PaymentStatus,
				len(order.Items),
				total,
			)
		}

	case "checkout":
		method, err := enums.ParsePaymentMethod(*payment)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid payment method: %v\n", err)
			os.Exit(1)
		}
		svc, err := checkout.NewService(checkout.ServiceParams{
			Cart:     cartStore,
			Calc:     calc,
			Orders:   orderLog,
			Profile:  profileStore,
			Logger:   logg,
			Notifier: notifier,
			Metrics:  storeMetrics,
		})
		requireResource(ctx, logg, "checkout service", err)

		info := types.CustomerInfo{
			FirstName:     *firstName,
			LastName:      *lastName,
			Email:         *email,
			Phone:         *phone,
			Address:       *address,
			City:          *city,
			State:         *state,
			Zip:           *zip,
			Country:       *country,
			PaymentMethod: method,
			AgreeTerms:    *agree,
		}
		if info.FirstName == "" && info.Email == "" {
			// No form flags given; fall back to the saved profile.
			if saved, ok, err := profileStore.Load(ctx); err == nil && ok {
				saved.PaymentMethod = method
				saved.AgreeTerms = *agree
				info = saved
			}
		}

		order, err := svc.Submit(ctx, info)
		if err != nil {
			fmt.Fprintf(os.Stderr, "checkout failed: %v\n", err)
			os.Exit(1)
		}
		total, err := converter.FormatPrice(order.Total, display)
		exitOnError(err)
		fmt.Printf("order %s placed, total %s\n", order.ID, total)

	case "currency":
		if *curCode == "" {
			fmt.Printf("current currency: %s\n", display)
			return
		}
		cur, err := enums.ParseCurrency(strings.ToUpper(*curCode))
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid currency: %v\n", err)
			os.Exit(1)
		}
		exitOnError(preference.Save(ctx, cur))
		fmt.Printf("currency set to %s\n", cur)

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", *cmd)
		flag.Usage()
		os.Exit(1)
	}
}

func printProducts(converter *currency.Converter, display enums.Currency, products []catalog.Product) {
	if len(products) == 0 {
		fmt.Println("no products found")
		return
	}
	for _, p := range products {
		price, err := converter.FormatPrice(p.Price, display)
		if err != nil {
			price = fmt.Sprintf("%d", p.Price)
		}
		badge := ""
		if p.Badge != "" {
			badge = "  [" + p.Badge + "]"
		}
		fmt.Printf("%2d  %-28s %-12s %s  %.1f (%d reviews)%s\n",
			p.ID, p.Name, p.Category, price, p.Rating, p.Reviews, badge)
	}
}

func printCart(converter *currency.Converter, display enums.Currency, cartStore *cart.Store, calc *pricing.Calculator) {
	items := cartStore.Items()
	if len(items) == 0 {
		fmt.Println("cart is empty")
		return
	}
	for _, item := range items {
		price, err := converter.FormatPrice(item.Price, display)
		if err != nil {
			price = fmt.Sprintf("%d", item.Price)
		}
		fmt.Printf("%2d  %-28s %s x%d\n", item.ProductID, item.Name, price, item.Quantity)
	}

	totals := calc.Quote(items).Rounded()
	for _, line := range []struct {
		label  string
		amount int64
	}{
		{"subtotal", totals.Subtotal},
		{"shipping", totals.Shipping},
		{"tax", totals.Tax},
		{"total", totals.Total},
	} {
		formatted, err := converter.FormatPrice(line.amount, display)
		if err != nil {
			formatted = fmt.Sprintf("%d", line.amount)
		}
		fmt.Printf("%-10s %s\n", line.label, formatted)
	}
}

func requireResource(ctx context.Context, logg *logger.Logger, name string, err error) {
	if err != nil {
		logg.Error(ctx, "failed to set up "+name, err)
		os.Exit(1)
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
