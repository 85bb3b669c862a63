package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"locations-api/internal/config"

	"github.com/jackc/pgx/v5"
)

type locationRecord struct {
	Name    string
	Address string
}

type residentRecord struct {
	Name       string
	LocationID int64
}

func main() {
	locationsFile := flag.String("locations", "", "Path to the locations CSV file to import")
	residentsFile := flag.String("residents", "", "Path to the residents CSV file to import")
	flag.Parse()

	if *locationsFile == "" && *residentsFile == "" {
		fmt.Println("Error: at least one of --locations or --residents is required")
		os.Exit(1)
	}

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Connect to DB
	conn, err := pgx.Connect(context.Background(), cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(context.Background())

	if *locationsFile != "" {
		if err := importLocations(conn, *locationsFile); err != nil {
			fmt.Printf("Error importing locations: %v\n", err)
			os.Exit(1)
		}
	}

	if *residentsFile != "" {
		if err := importResidents(conn, *residentsFile); err != nil {
			fmt.Printf("Error importing residents: %v\n", err)
			os.Exit(1)
		}
	}
}

func importLocations(conn *pgx.Conn, filePath string) error {
	fmt.Printf("Starting location import from file: %s\n", filePath)

	rows, err := readCSV(filePath)
	if err != nil {
		return err
	}

	var records []locationRecord
	for _, row := range rows {
		if len(row) < 2 {
			return fmt.Errorf("invalid record length: %d, expected at least 2 columns", len(row))
		}
		records = append(records, locationRecord{Name: row[0], Address: row[1]})
	}

	fmt.Printf("Parsed %d location records\n", len(records))

	// Use CopyFrom for bulk insert
	count, err := conn.CopyFrom(
		context.Background(),
		pgx.Identifier{"locations"},
		[]string{"name", "address"},
		pgx.CopyFromSlice(len(records), func(i int) ([]interface{}, error) {
			r := records[i]
			return []interface{}{r.Name, r.Address}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to copy locations: %w", err)
	}

	fmt.Printf("Successfully imported %d locations\n", count)
	return nil
}

func importResidents(conn *pgx.Conn, filePath string) error {
	fmt.Printf("Starting resident import from file: %s\n", filePath)

	rows, err := readCSV(filePath)
	if err != nil {
		return err
	}

	var records []residentRecord
	for _, row := range rows {
		if len(row) < 2 {
			return fmt.Errorf("invalid record length: %d, expected at least 2 columns", len(row))
		}

		locationID, err := strconv.ParseInt(row[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid location id: %s", row[1])
		}

		records = append(records, residentRecord{Name: row[0], LocationID: locationID})
	}

	fmt.Printf("Parsed %d resident records\n", len(records))

	count, err := conn.CopyFrom(
		context.Background(),
		pgx.Identifier{"residents"},
		[]string{"name", "location_id"},
		pgx.CopyFromSlice(len(records), func(i int) ([]interface{}, error) {
			r := records[i]
			return []interface{}{r.Name, r.LocationID}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to copy residents: %w", err)
	}

	fmt.Printf("Successfully imported %d residents\n", count)
	return nil
}

func readCSV(filePath string) ([][]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err != nil {
			if err.Error() == "EOF" {
				break
			}
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
