package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"foodflex/internal/cart"
	"foodflex/internal/cartstore"
	"foodflex/internal/catalog"
	"foodflex/internal/config"
	"foodflex/internal/connections/database"
	"foodflex/internal/connections/rabbitmq"
	"foodflex/internal/connections/redisdb"
	"foodflex/internal/domain"
	"foodflex/internal/handlers"
	"foodflex/internal/history"
	"foodflex/internal/httpx"
	"foodflex/internal/logger"
	"foodflex/internal/metrics"
	"foodflex/internal/notify"
	"foodflex/internal/order"
	"foodflex/internal/repository"
	"foodflex/internal/service"
)

func main() {
	mode := flag.String("mode", "", "order-service | notification-subscriber | demo")
	port := flag.Int("port", 3000, "order-service: http port")
	cfgPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	lg := logger.New("bootstrap")
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var err error
	switch *mode {
	case "order-service":
		lg.Info("service_started", map[string]any{"service": "order-service", "port": *port})
		err = runOrderService(ctx, *cfgPath, *port)
	case "notification-subscriber":
		lg.Info("service_started", map[string]any{"service": "notification-subscriber"})
		err = runSubscriber(ctx, *cfgPath)
	case "demo":
		err = runDemo(ctx)
	default:
		fmt.Fprintln(os.Stderr, "--mode is required: order-service | notification-subscriber | demo")
		os.Exit(2)
	}
	if err != nil {
		lg.Error("fatal", err, nil)
		os.Exit(1)
	}
}

func runOrderService(ctx context.Context, cfgPath string, port int) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	lg := logger.New("order-service")

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := repository.NewOrders(pool)
	if err := repo.Init(ctx); err != nil {
		return err
	}

	mq, err := rabbitmq.Dial(cfg.RabbitMQ)
	if err != nil {
		return err
	}
	defer mq.Close()
	if err := mq.DeclareTopology(); err != nil {
		return err
	}

	rdb, err := redisdb.Connect(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer rdb.Close()

	m := metrics.New()
	proc := order.NewProcessor(lg.With("order-processor"),
		order.WithTick(cfg.Tick()), order.WithMaxInFlight(cfg.Processing.MaxInFlight))
	obs := order.Multi{
		m.Observer(),
		service.NewStatusSync(repo, lg),
		notify.NewPublisher(mq, lg),
	}

	svc := service.NewOrderService(ctx, catalog.New(), cartstore.New(rdb),
		repo, history.NewLog(cfg.HistoryPath), proc, obs, lg)

	mux := handlers.New(svc, lg).Router()
	root := http.NewServeMux()
	root.Handle("/", mux)
	root.Handle("/metrics", m.Handler())

	err = httpx.New(fmt.Sprintf(":%d", port), root).Run(ctx)

	// Let in-flight orders reach their terminal state before exiting.
	proc.Wait()
	return err
}

func runSubscriber(ctx context.Context, cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	mq, err := rabbitmq.Dial(cfg.RabbitMQ)
	if err != nil {
		return err
	}
	defer mq.Close()

	return notify.NewSubscriber(mq, logger.New("notification-subscriber")).Run(ctx)
}

// runDemo places one order headlessly: a seeded cart, the real processor and
// a logging observer, with the history line written the way placement does.
func runDemo(ctx context.Context) error {
	lg := logger.New("demo")
	cat := catalog.New()
	r := cat.Restaurants()[0]

	c := cart.New()
	for _, id := range []string{"MC001", "BV001"} {
		it, _ := cat.Item(r.ID, id)
		if err := c.Add(it); err != nil {
			return err
		}
	}
	lg.Info("cart_ready", map[string]any{
		"items":          c.Len(),
		"total":          c.TotalPrice(),
		"calories":       c.TotalCalories(),
		"recommendation": c.Recommend(),
	})

	o := domain.NewOrder(c.Items(), r)
	if err := history.NewLog("").Append(o); err != nil {
		return err
	}
	c.Clear()

	proc := order.NewProcessor(lg.With("order-processor"))
	if err := proc.Start(ctx, o, order.NewLogObserver(lg)); err != nil {
		return err
	}
	proc.Wait()
	return nil
}
