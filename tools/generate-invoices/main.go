// Invoice Batch Generator
//
// This tool fills a directory with synthetic invoice documents carrying a
// controllable mix of validation problems. It is used to exercise the
// process command and the dashboard against batches much larger than the
// fixtures in the test suite.
//
// Usage:
//
//	go run main.go invoices
//	go run main.go invoices 500  # Specify target document count
package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const defaultCount = 100

var (
	vendors = []string{
		"Acme Corp",
		"Globex",
		"Initech",
		"Umbrella Supply",
		"Stark Industrial",
		"Wayne Logistics",
		"Tyrell Parts",
		"Cyberdyne Tooling",
		"Wonka Imports",
		"Sirius Freight",
	}

	terms = []string{"NET30", "NET45", "NET60", "DUE_ON_RECEIPT"}

	departments = []string{"facilities", "engineering", "marketing", "operations"}
)

func main() {
	dir := "invoices"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	count := defaultCount
	if len(os.Args) > 2 {
		if n, err := strconv.Atoi(os.Args[2]); err == nil && n > 0 {
			count = n
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create %s: %v\n", dir, err)
		os.Exit(1)
	}

	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	flawed := 0

	for i := 0; i < count; i++ {
		inv := cleanInvoice(i, start)

		// Roughly half the documents carry a problem, spread across the
		// failure modes the validator knows about.
		switch rand.Intn(16) {
		case 0:
			delete(inv, "vendor")
		case 1:
			delete(inv, "invoice_number")
		case 2:
			delete(inv, "invoice_date")
		case 3:
			inv["amount"] = "pending"
		case 4:
			inv["amount"] = fmt.Sprintf("-%d.00", rand.Intn(500)+1)
		case 5:
			inv["invoice_date"] = start.AddDate(0, 0, i%360).Format("02/01/2006")
		case 6:
			delete(inv, "po_number")
		case 7:
			inv["po_amount"] = fmt.Sprintf("%d.00", rand.Intn(9000)+100)
		case 8:
			// Duplicate of the previous document's identity.
			if i > 0 {
				inv["vendor"] = vendors[(i-1)%len(vendors)]
				inv["invoice_number"] = fmt.Sprintf("INV-%05d", i-1)
			}
		default:
			writeInvoice(dir, i, inv)
			continue
		}
		flawed++

		writeInvoice(dir, i, inv)
	}

	fmt.Fprintf(os.Stderr, "Generated %d invoices in %s (%d clean, %d flawed)\n",
		count, dir, count-flawed, flawed)
}

func cleanInvoice(i int, start time.Time) map[string]any {
	amount := fmt.Sprintf("%d.%02d", rand.Intn(9000)+100, rand.Intn(100))

	return map[string]any{
		"vendor":         vendors[i%len(vendors)],
		"invoice_number": fmt.Sprintf("INV-%05d", i),
		"invoice_date":   start.AddDate(0, 0, i%360).Format("2006-01-02"),
		"amount":         amount,
		"po_number":      fmt.Sprintf("PO-%04d", i),
		"po_amount":      amount,
		"terms":          terms[rand.Intn(len(terms))],
		"department":     departments[rand.Intn(len(departments))],
	}
}

func writeInvoice(dir string, i int, inv map[string]any) {
	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode invoice %d: %v\n", i, err)
		os.Exit(1)
	}

	name := filepath.Join(dir, fmt.Sprintf("inv-%05d.json", i))
	if err := os.WriteFile(name, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", name, err)
		os.Exit(1)
	}
}
