package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"swipenight/backend/internal/alerts"
	"swipenight/backend/internal/api/handler"
	"swipenight/backend/internal/invites"
	"swipenight/backend/internal/models"
	"swipenight/backend/internal/notify"
	"swipenight/backend/internal/payments"
	"swipenight/backend/internal/storage"
	"swipenight/backend/internal/swipes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies() (*gorm.DB, *redis.Client) {
	// 1. PostgreSQL
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	// TranslateError обов'язковий: ядро розпізнає дублікати через
	// gorm.ErrDuplicatedKey, а не через код помилки драйвера.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	// 2. Redis
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: "",
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	// 3. Міграції (створення таблиць та unique-індексів,
	// на яких тримається race-безпека свайпів і збігів)
	err = db.AutoMigrate(
		&models.Event{},
		&models.EventMember{},
		&models.Invite{},
		&models.Profile{},
		&models.Swipe{},
		&models.Match{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func setupAlerts() *alerts.Notifier {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatIDRaw := os.Getenv("TELEGRAM_ADMIN_CHAT_ID")
	if token == "" || chatIDRaw == "" {
		log.Println("Operator alerts disabled (TELEGRAM_BOT_TOKEN / TELEGRAM_ADMIN_CHAT_ID not set).")
		return nil
	}

	chatID, err := strconv.ParseInt(chatIDRaw, 10, 64)
	if err != nil {
		log.Printf("Warning: invalid TELEGRAM_ADMIN_CHAT_ID, alerts disabled: %v", err)
		return nil
	}

	notifier, err := alerts.NewNotifier(token, chatID)
	if err != nil {
		log.Printf("Warning: failed to start operator alerts: %v", err)
		return nil
	}
	return notifier
}

func main() {
	log.Println("Starting SwipeNight Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	// 1. Ініціалізація залежностей
	db, rdb := setupDependencies()
	s := storage.NewStorageService(db, rdb)

	// 2. Сервіси
	swipeSvc := swipes.NewService(s)
	inviteSvc := invites.NewService(s)
	paymentSvc := payments.NewService(s, setupAlerts(), payments.Config{
		SecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		PriceID:       os.Getenv("STRIPE_PRICE_ID"),
		WebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		AppURL:        os.Getenv("APP_URL"),
	})

	// 3. Realtime-хаб сповіщень про збіги
	hub := notify.NewHub(rdb)
	go hub.Run()

	// 4. Налаштування Gin та роутингу
	r := gin.Default()
	h := handler.NewHandler(swipeSvc, inviteSvc, paymentSvc, hub)

	r.GET("/auth/anon", h.GetAnonID)
	r.POST("/stripe/webhook", h.StripeWebhook)
	r.GET("/ws", h.ServeWebSocket)

	authed := r.Group("/", h.RequireAuth())
	authed.POST("/swipe", h.SubmitSwipe)
	authed.POST("/invites", h.MintInvite)
	authed.POST("/join", h.JoinEvent)
	authed.GET("/events/:id/candidates", h.ListCandidates)
	authed.POST("/checkout", h.CreateCheckout)

	// 5. Запуск HTTP-сервера
	server := &http.Server{
		Addr:           ":8080",
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
