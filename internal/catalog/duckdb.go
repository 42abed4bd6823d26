// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/ngocvb/laptoplens/internal/config"
	"github.com/ngocvb/laptoplens/internal/logging"
	"github.com/ngocvb/laptoplens/internal/metrics"
	"github.com/ngocvb/laptoplens/internal/models"
)

// DB is the DuckDB-backed catalog store.
type DB struct {
	conn *sql.DB
	cfg  *config.DatabaseConfig
}

var _ Store = (*DB)(nil)

// schema creates the laptops table. Descriptor columns are free text;
// benchmark and battery columns are nullable.
const schema = `
CREATE SEQUENCE IF NOT EXISTS seq_laptops_id START 1;
CREATE TABLE IF NOT EXISTS laptops (
    id                      BIGINT PRIMARY KEY DEFAULT nextval('seq_laptops_id'),
    name                    VARCHAR NOT NULL,
    brand                   VARCHAR NOT NULL,
    cpu                     VARCHAR NOT NULL,
    ram_gb                  INTEGER NOT NULL,
    gpu                     VARCHAR,
    storage                 VARCHAR NOT NULL,
    screen                  VARCHAR NOT NULL,
    price                   BIGINT NOT NULL,
    category                VARCHAR NOT NULL,
    image_url               VARCHAR,
    battery_capacity        INTEGER,
    battery_life_office     INTEGER,
    battery_life_gaming     INTEGER,
    cpu_single_core_plugged INTEGER,
    cpu_multi_core_plugged  INTEGER,
    cpu_single_core_battery INTEGER,
    cpu_multi_core_battery  INTEGER,
    gpu_score_plugged       INTEGER,
    gpu_score_battery       INTEGER
);`

// laptopColumns is the canonical SELECT column list matching scanLaptop.
const laptopColumns = `id, name, brand, cpu, ram_gb, gpu, storage, screen, price, category,
    image_url, battery_capacity, battery_life_office, battery_life_gaming,
    cpu_single_core_plugged, cpu_multi_core_plugged, cpu_single_core_battery,
    cpu_multi_core_battery, gpu_score_plugged, gpu_score_battery`

// New opens (or creates) the DuckDB catalog database and initializes the
// schema.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	numThreads := cfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	// Ensure the parent directory exists for the database file.
	dbDir := filepath.Dir(cfg.Path)
	if dbDir != "" && dbDir != "." {
		if err := os.MkdirAll(dbDir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
		}
	}

	connStr := fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s",
		cfg.Path, numThreads, cfg.MaxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(numThreads)
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(time.Hour)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	db := &DB{conn: conn, cfg: cfg}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := conn.ExecContext(ctx, schema); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logging.Info().Str("path", cfg.Path).Int("threads", numThreads).Msg("Catalog database initialized")
	return db, nil
}

// Close closes the underlying connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}

// whereClause renders the conjunctive WHERE clause for a filter.
func whereClause(f Filter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if f.Brand != "" {
		conds = append(conds, "brand = ?")
		args = append(args, f.Brand)
	}
	if f.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, string(f.Category))
	}
	if f.PriceMin != nil {
		conds = append(conds, "price >= ?")
		args = append(args, *f.PriceMin)
	}
	if f.PriceMax != nil {
		conds = append(conds, "price <= ?")
		args = append(args, *f.PriceMax)
	}
	if f.RAMMin > 0 {
		conds = append(conds, "ram_gb >= ?")
		args = append(args, f.RAMMin)
	}
	if len(f.ExcludeGPUSubstr) > 0 {
		// Discrete GPU required: records without a GPU descriptor are
		// excluded along with the denylisted integrated descriptors.
		conds = append(conds, "gpu IS NOT NULL")
		for _, sub := range f.ExcludeGPUSubstr {
			conds = append(conds, "gpu NOT LIKE ?")
			args = append(args, "%"+sub+"%")
		}
	}
	if f.NameContains != "" {
		conds = append(conds, "lower(name) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.NameContains)+"%")
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Find returns all laptops matching the filter.
func (db *DB) Find(ctx context.Context, f Filter) (_ []models.Laptop, err error) {
	defer func(start time.Time) { metrics.ObserveCatalogQuery("find", start, err) }(time.Now())

	where, args := whereClause(f)
	query := "SELECT " + laptopColumns + " FROM laptops" + where
	if f.OrderPriceAsc {
		query += " ORDER BY price ASC, id ASC"
	} else {
		query += " ORDER BY id ASC"
	}
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", f.Limit)
	}
	if f.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", f.Offset)
	}

	return db.queryLaptops(ctx, query, args...)
}

// Count returns the number of laptops matching the filter.
func (db *DB) Count(ctx context.Context, f Filter) (_ int, err error) {
	defer func(start time.Time) { metrics.ObserveCatalogQuery("count", start, err) }(time.Now())

	where, args := whereClause(f)
	var n int
	err = db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM laptops"+where, args...).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count laptops: %w", err)
	}
	return n, nil
}

// Get returns one laptop by ID.
func (db *DB) Get(ctx context.Context, id int64) (_ models.Laptop, err error) {
	defer func(start time.Time) { metrics.ObserveCatalogQuery("get", start, err) }(time.Now())

	row := db.conn.QueryRowContext(ctx,
		"SELECT "+laptopColumns+" FROM laptops WHERE id = ?", id)
	l, err := scanLaptop(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Laptop{}, ErrNotFound
	}
	if err != nil {
		return models.Laptop{}, fmt.Errorf("failed to get laptop %d: %w", id, err)
	}
	return l, nil
}

// GetMany returns the laptops with the given IDs in request order.
func (db *DB) GetMany(ctx context.Context, ids []int64) ([]models.Laptop, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	found, err := db.queryLaptops(ctx,
		"SELECT "+laptopColumns+" FROM laptops WHERE id IN ("+placeholders+")", args...)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]models.Laptop, len(found))
	for _, l := range found {
		byID[l.ID] = l
	}

	result := make([]models.Laptop, 0, len(ids))
	for _, id := range ids {
		if l, ok := byID[id]; ok {
			result = append(result, l)
		}
	}
	return result, nil
}

// Suggest returns type-ahead suggestions over name and brand.
func (db *DB) Suggest(ctx context.Context, q string, limit int) (_ []models.Laptop, err error) {
	defer func(start time.Time) { metrics.ObserveCatalogQuery("suggest", start, err) }(time.Now())

	like := "%" + strings.ToLower(q) + "%"
	return db.queryLaptops(ctx,
		"SELECT "+laptopColumns+` FROM laptops
         WHERE lower(name) LIKE ? OR lower(brand) LIKE ?
         ORDER BY price ASC, id ASC LIMIT ?`,
		like, like, limit)
}

// Search returns laptops matching any term across descriptor fields.
func (db *DB) Search(ctx context.Context, terms []string, limit int) (_ []models.Laptop, err error) {
	defer func(start time.Time) { metrics.ObserveCatalogQuery("search", start, err) }(time.Now())

	if len(terms) == 0 {
		return db.Find(ctx, Filter{OrderPriceAsc: true, Limit: limit})
	}

	var conds []string
	var args []interface{}
	for _, term := range terms {
		like := "%" + strings.ToLower(term) + "%"
		conds = append(conds, `(lower(name) LIKE ? OR lower(brand) LIKE ? OR lower(category) LIKE ?
            OR lower(cpu) LIKE ? OR lower(coalesce(gpu, '')) LIKE ? OR lower(storage) LIKE ?)`)
		args = append(args, like, like, like, like, like, like)
	}
	args = append(args, limit)

	return db.queryLaptops(ctx,
		"SELECT "+laptopColumns+" FROM laptops WHERE "+strings.Join(conds, " OR ")+
			" ORDER BY price ASC, id ASC LIMIT ?", args...)
}

// Insert adds a laptop and returns its assigned ID.
func (db *DB) Insert(ctx context.Context, l models.Laptop) (_ int64, err error) {
	defer func(start time.Time) { metrics.ObserveCatalogQuery("insert", start, err) }(time.Now())

	var gpu, imageURL sql.NullString
	if l.GPU != "" {
		gpu = sql.NullString{String: l.GPU, Valid: true}
	}
	if l.ImageURL != "" {
		imageURL = sql.NullString{String: l.ImageURL, Valid: true}
	}

	var id int64
	err = db.conn.QueryRowContext(ctx, `
        INSERT INTO laptops (name, brand, cpu, ram_gb, gpu, storage, screen, price, category,
            image_url, battery_capacity, battery_life_office, battery_life_gaming,
            cpu_single_core_plugged, cpu_multi_core_plugged, cpu_single_core_battery,
            cpu_multi_core_battery, gpu_score_plugged, gpu_score_battery)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        RETURNING id`,
		l.Name, l.Brand, l.CPU, l.RAMGB, gpu, l.Storage, l.Screen, l.Price, string(l.Category),
		imageURL, nullInt(l.BatteryCapacityWh), nullInt(l.BatteryLifeOfficeMin), nullInt(l.BatteryLifeGamingMin),
		nullInt(l.CPUSingleCorePlugged), nullInt(l.CPUMultiCorePlugged), nullInt(l.CPUSingleCoreBattery),
		nullInt(l.CPUMultiCoreBattery), nullInt(l.GPUScorePlugged), nullInt(l.GPUScoreBattery),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert laptop: %w", err)
	}
	return id, nil
}

// queryLaptops runs a SELECT with the canonical column list and scans rows.
func (db *DB) queryLaptops(ctx context.Context, query string, args ...interface{}) ([]models.Laptop, error) {
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query laptops: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			logging.Error().Err(cerr).Msg("Error closing rows")
		}
	}()

	var laptops []models.Laptop
	for rows.Next() {
		l, err := scanLaptop(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan laptop: %w", err)
		}
		laptops = append(laptops, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}
	return laptops, nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanLaptop.
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanLaptop scans one row using the laptopColumns order.
func scanLaptop(s scanner) (models.Laptop, error) {
	var l models.Laptop
	var gpu, imageURL sql.NullString
	var battCap, battOffice, battGaming sql.NullInt64
	var cpuSP, cpuMP, cpuSB, cpuMB, gpuP, gpuB sql.NullInt64
	var category string

	err := s.Scan(&l.ID, &l.Name, &l.Brand, &l.CPU, &l.RAMGB, &gpu, &l.Storage, &l.Screen,
		&l.Price, &category, &imageURL, &battCap, &battOffice, &battGaming,
		&cpuSP, &cpuMP, &cpuSB, &cpuMB, &gpuP, &gpuB)
	if err != nil {
		return models.Laptop{}, err
	}

	l.Category = models.Category(category)
	l.GPU = gpu.String
	l.ImageURL = imageURL.String
	l.BatteryCapacityWh = intPtr(battCap)
	l.BatteryLifeOfficeMin = intPtr(battOffice)
	l.BatteryLifeGamingMin = intPtr(battGaming)
	l.CPUSingleCorePlugged = intPtr(cpuSP)
	l.CPUMultiCorePlugged = intPtr(cpuMP)
	l.CPUSingleCoreBattery = intPtr(cpuSB)
	l.CPUMultiCoreBattery = intPtr(cpuMB)
	l.GPUScorePlugged = intPtr(gpuP)
	l.GPUScoreBattery = intPtr(gpuB)
	return l, nil
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func nullInt(p *int) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}
