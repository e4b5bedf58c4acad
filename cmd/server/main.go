package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"brewbatter_back_end/internal/api"
	"brewbatter_back_end/internal/cache"
	"brewbatter_back_end/internal/config"
	"brewbatter_back_end/internal/database"
	"brewbatter_back_end/internal/handlers"
	"brewbatter_back_end/internal/handlers/admin"
	"brewbatter_back_end/internal/handlers/shop"
	"brewbatter_back_end/internal/handlers/staff"
	"brewbatter_back_end/internal/middleware"
	"brewbatter_back_end/internal/receipt"
	"brewbatter_back_end/internal/routes"
	"brewbatter_back_end/internal/services"
	"brewbatter_back_end/internal/utils"
)

func main() {
	config.Load()
	settings := config.FromEnv()

	database.ConnectDatabases()
	defer database.CloseDatabases()

	if database.Scylla != nil {
		if err := database.EnsureAuditTable(); err != nil {
			log.Printf("⚠️ Journal d'audit indisponible: %v", err)
		}
	}

	backend := api.NewClient(settings.BackendURL, api.WithToken(settings.BackendToken))
	log.Println("✅ Backend REST :", settings.BackendURL)

	menu := cache.NewMenuCache(database.Redis, backend)
	search := services.NewSearch(database.Elastic)
	storage := services.NewStorage(database.MinIO, os.Getenv("MINIO_BUCKET"), os.Getenv("MINIO_PUBLIC_URL"))

	var mailer shop.BillMailer
	mailCfg := utils.MailConfigFromEnv()
	if mailCfg.Enabled() {
		mailer = utils.SMTPMailer{Config: mailCfg}
		log.Println("✅ Envoi des notes par e-mail activé")
	} else {
		log.Println("⚠️ SMTP non configuré — notes par e-mail désactivées")
	}

	bill := settings.BillLayout(receipt.Whole)
	billDecimals := settings.BillLayout(receipt.TwoDecimals)
	kot := settings.KOTLayout()

	deps := routes.Deps{
		Shop: &shop.Handler{
			Carts:   cache.NewCartStore(database.Redis, settings.CartTTL),
			Menu:    menu,
			Search:  search,
			Orders:  backend,
			Kitchen: cache.NewKitchenFeed(database.Redis),
			Mailer:  mailer,
			PubSub:  database.Redis,
			Docs: shop.Documents{
				Bill:       bill,
				EmailBill:  billDecimals,
				KOT:        kot,
				PrintDelay: settings.PrintDelay,
			},
		},
		Staff: &staff.Handler{
			Orders:       backend,
			Mailer:       mailer,
			PubSub:       database.Redis,
			Payment:      staff.Payment{VPA: settings.UPIVPA, Payee: settings.CafeName},
			Bill:         bill,
			BillDecimals: billDecimals,
			KOT:          kot,
		},
		Admin: &admin.Handler{
			Menu:      backend,
			Inventory: backend,
			Images:    storage,
			Index:     search,
			Cache:     menu,
			AuditLogs: utils.ListAuditLogs,
		},
		Sessions:  middleware.NewSessionStore(settings.SessionSecret, os.Getenv("GIN_MODE") == gin.ReleaseMode),
		Redis:     database.Redis,
		JWTSecret: settings.JWTSecret,
		Health: func() gin.H {
			return gin.H{
				"elastic": search.Enabled(),
				"minio":   storage.Enabled(),
				"audit":   database.Scylla != nil,
				"mail":    mailCfg.Enabled(),
			}
		},
	}

	handlers.Upgrader.CheckOrigin = func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(settings.CORSOrigins, origin)
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     settings.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.CartIDHeader},
		ExposeHeaders:    []string{middleware.CartIDHeader, "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	routes.RegisterRoutes(r, deps)

	server := &http.Server{
		Addr:              ":" + settings.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Println("🚀 Serveur BrewBatter lancé sur le port", settings.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("❌ Erreur serveur:", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("🛑 Arrêt demandé, fermeture des connexions...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("⚠️ Arrêt forcé: %v", err)
	}
	log.Println("✅ Serveur arrêté")
}
