// seed genera un script SQL con el esquema y datos de demostración
// (clientes, un usuario admin y facturas de ejemplo).
//
// Uso: go run ./cmd/seed [ruta/salida.sql]
// Por defecto escribe seed_demo.sql en el directorio actual.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const schema = `
CREATE TABLE IF NOT EXISTS customers (
	id UUID PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	image_url VARCHAR(255) NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	email VARCHAR(255) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	name VARCHAR(255) NOT NULL,
	role VARCHAR(32) NOT NULL DEFAULT 'viewer',
	status VARCHAR(32) NOT NULL DEFAULT 'active',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS invoices (
	id UUID PRIMARY KEY,
	customer_id UUID NOT NULL REFERENCES customers(id),
	amount BIGINT NOT NULL,
	status VARCHAR(32) NOT NULL,
	date DATE NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

var demoCustomers = []struct {
	name, email string
}{
	{"Evil Rabbit", "evil@rabbit.com"},
	{"Delba de Oliveira", "delba@oliveira.com"},
	{"Lee Robinson", "lee@robinson.com"},
	{"Michael Novotny", "michael@novotny.com"},
	{"Amy Burns", "amy@burns.com"},
	{"Balazs Orban", "balazs@orban.com"},
}

// Montos en centavos y estados de las facturas demo: una por cliente.
var demoInvoices = []struct {
	amountCents int64
	status      string
	daysAgo     int
}{
	{15795, "pending", 3},
	{20348, "pending", 30},
	{3040, "paid", 45},
	{44800, "paid", 60},
	{34577, "pending", 90},
	{54246, "pending", 120},
}

func main() {
	outPath := "seed_demo.sql"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bcrypt: %v\n", err)
		os.Exit(1)
	}

	var b strings.Builder
	b.WriteString("-- Generado por cmd/seed. Datos de demostración.\n")
	b.WriteString(schema)
	b.WriteString("\n")

	fmt.Fprintf(&b, "INSERT INTO users (id, email, password_hash, name, role, status) VALUES\n")
	fmt.Fprintf(&b, "\t('%s', 'admin@facturas.local', '%s', 'Admin', 'admin', 'active');\n\n",
		uuid.New(), string(hash))

	customerIDs := make([]string, len(demoCustomers))
	b.WriteString("INSERT INTO customers (id, name, email) VALUES\n")
	for i, c := range demoCustomers {
		customerIDs[i] = uuid.New().String()
		sep := ","
		if i == len(demoCustomers)-1 {
			sep = ";"
		}
		fmt.Fprintf(&b, "\t('%s', '%s', '%s')%s\n", customerIDs[i], escape(c.name), c.email, sep)
	}
	b.WriteString("\n")

	now := time.Now().UTC()
	b.WriteString("INSERT INTO invoices (id, customer_id, amount, status, date) VALUES\n")
	for i, inv := range demoInvoices {
		date := now.AddDate(0, 0, -inv.daysAgo).Format("2006-01-02")
		sep := ","
		if i == len(demoInvoices)-1 {
			sep = ";"
		}
		fmt.Fprintf(&b, "\t('%s', '%s', %d, '%s', '%s')%s\n",
			uuid.New(), customerIDs[i], inv.amountCents, inv.status, date, sep)
	}

	if err := os.WriteFile(outPath, []byte(b.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "escribir %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("Script generado: %s (%d clientes, %d facturas)\n", outPath, len(demoCustomers), len(demoInvoices))
}

// escape duplica comillas simples para literales SQL.
func escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
