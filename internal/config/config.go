package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"brewbatter_back_end/internal/receipt"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// Settings regroupe la configuration applicative lue dans l'environnement
type Settings struct {
	Port         string
	BackendURL   string
	BackendToken string

	CafeName string
	Tagline  []string
	Contact  string
	Website  string
	Currency string
	Location *time.Location

	CartTTL       time.Duration
	UPIVPA        string
	SessionSecret string
	JWTSecret     string
	CORSOrigins   []string
	PrintDelay    time.Duration
}

// FromEnv lit Settings avec des valeurs par défaut
func FromEnv() Settings {
	s := Settings{
		Port:          getEnv("PORT", "8080"),
		BackendURL:    getEnv("BACKEND_API_URL", "http://localhost:3000"),
		BackendToken:  os.Getenv("BACKEND_API_TOKEN"),
		CafeName:      getEnv("CAFE_NAME", "BREWBATTER"),
		Tagline:       splitList(getEnv("CAFE_TAGLINE", "Premium Quality,Food & Beverages")),
		Contact:       os.Getenv("CAFE_CONTACT"),
		Website:       getEnv("CAFE_WEBSITE", "www.brewbatter.in"),
		Currency:      getEnv("CURRENCY_SYMBOL", "₹"),
		Location:      loadLocation(getEnv("RECEIPT_TIMEZONE", "Asia/Kolkata")),
		CartTTL:       time.Duration(getInt("CART_TTL_HOURS", 12)) * time.Hour,
		UPIVPA:        os.Getenv("UPI_VPA"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		PrintDelay:    time.Duration(getInt("PRINT_DELAY_MS", 500)) * time.Millisecond,
	}

	if s.SessionSecret == "" {
		log.Println("⚠️ SESSION_SECRET non défini — les cookies de session ne survivront pas à un redémarrage")
	}
	if s.JWTSecret == "" {
		log.Println("⚠️ JWT_SECRET non défini — les routes staff refuseront toute requête")
	}
	return s
}

// BillLayout : note client aux couleurs du café
func (s Settings) BillLayout(numbers receipt.NumberPolicy) receipt.Layout {
	l := receipt.DefaultBillLayout()
	l.Header = append([]string{s.CafeName}, s.Tagline...)
	l.Currency = s.Currency
	l.Contact = s.Contact
	l.Website = s.Website
	l.Location = s.Location
	l.Numbers = numbers
	if numbers == receipt.TwoDecimals {
		l.RateWidth = 9
		l.TotalWidth = 10
		l.AmountWidth = 10
		l.RuleWidth = 31
	}
	return l
}

func (s Settings) KOTLayout() receipt.Layout {
	l := receipt.DefaultKOTLayout()
	l.Location = s.Location
	return l
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("⚠️ %s invalide (%q), valeur par défaut %d", key, v, fallback)
		return fallback
	}
	return n
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("⚠️ Fuseau %q introuvable, UTC utilisé: %v", name, err)
		return time.UTC
	}
	return loc
}
