package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/invoicehub/backend/internal/infrastructure/config"
)

// Placeholder data for development environments.
var customers = []struct {
	name, email, imageURL string
}{
	{"Evil Rabbit", "evil@rabbit.com", "/customers/evil-rabbit.png"},
	{"Delba de Oliveira", "delba@oliveira.com", "/customers/delba-de-oliveira.png"},
	{"Lee Robinson", "lee@robinson.com", "/customers/lee-robinson.png"},
	{"Michael Novotny", "michael@novotny.com", "/customers/michael-novotny.png"},
	{"Amy Burns", "amy@burns.com", "/customers/amy-burns.png"},
	{"Balazs Orban", "balazs@orban.com", "/customers/balazs-orban.png"},
}

var invoices = []struct {
	customerEmail string
	amount        int64
	status        string
	date          string
}{
	{"evil@rabbit.com", 15795, "pending", "2022-12-06"},
	{"delba@oliveira.com", 20348, "pending", "2022-11-14"},
	{"amy@burns.com", 3040, "paid", "2022-10-29"},
	{"michael@novotny.com", 44800, "paid", "2023-09-10"},
	{"balazs@orban.com", 34577, "pending", "2023-08-05"},
	{"lee@robinson.com", 54246, "pending", "2023-07-16"},
	{"evil@rabbit.com", 666, "pending", "2023-06-27"},
	{"delba@oliveira.com", 32545, "paid", "2023-06-09"},
	{"amy@burns.com", 1250, "paid", "2023-06-17"},
	{"michael@novotny.com", 8546, "paid", "2023-06-07"},
	{"lee@robinson.com", 500, "paid", "2023-08-19"},
	{"balazs@orban.com", 8945, "paid", "2023-06-03"},
	{"michael@novotny.com", 1000, "paid", "2022-06-05"},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if _, err := db.Exec(`
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING`,
		"User", "user@nextmail.com", string(hash),
	); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	for _, c := range customers {
		if _, err := db.Exec(`
			INSERT INTO customers (name, email, image_url)
			VALUES ($1, $2, $3)
			ON CONFLICT (email) DO NOTHING`,
			c.name, c.email, c.imageURL,
		); err != nil {
			return fmt.Errorf("seed customer %s: %w", c.email, err)
		}
	}

	for _, inv := range invoices {
		if _, err := db.Exec(`
			INSERT INTO invoices (customer_id, amount, status, date)
			SELECT id, $2, $3, $4 FROM customers WHERE email = $1
			ON CONFLICT DO NOTHING`,
			inv.customerEmail, inv.amount, inv.status, inv.date,
		); err != nil {
			return fmt.Errorf("seed invoice for %s: %w", inv.customerEmail, err)
		}
	}

	fmt.Println("seeded")
	return nil
}
