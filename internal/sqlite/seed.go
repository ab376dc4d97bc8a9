// This file implements seeding of the standard dashboard datasets.
package sqlite

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/tabview/pkg/types"
)

// holding builds a holdings record.
func holding(id, name, ticker, sector, country string, weight, value, esg, carbon float64, rating string) types.Record {
	return types.Record{
		"id": id, "name": name, "ticker": ticker, "sector": sector, "country": country,
		"weight": weight, "value": value, "esg_score": esg, "carbon_intensity": carbon,
		"rating": rating,
	}
}

// company builds a companies record.
func company(id, name, sector, industry, country, rating string, esg, marketCap float64, controversy string) types.Record {
	return types.Record{
		"id": id, "name": name, "sector": sector, "industry": industry, "country": country,
		"esg_rating": rating, "esg_score": esg, "market_cap": marketCap, "controversy": controversy,
	}
}

// report builds a reports record.
func report(id, title, framework, period, status string, pages, issues float64, updated string) types.Record {
	return types.Record{
		"id": id, "title": title, "framework": framework, "period": period, "status": status,
		"pages": pages, "issues": issues, "updated_at": updated,
	}
}

// seedData holds the records written for each standard dataset.
var seedData = map[string][]types.Record{
	types.DatasetHoldings: {
		holding("h01", "Ørsted", "ORSTED", "Utilities", "DK", 6.2, 1240000, 82, 98.4, "AAA"),
		holding("h02", "Microsoft", "MSFT", "Technology", "US", 9.8, 1960000, 76, 3.1, "AAA"),
		holding("h03", "Shell", "SHEL", "Energy", "GB", 4.1, 820000, 41, 412.7, "BBB"),
		holding("h04", "Schneider Electric", "SU", "Industrials", "FR", 5.5, 1100000, 79, 12.3, "AA"),
		holding("h05", "TotalEnergies", "TTE", "Energy", "FR", 3.9, 780000, 45, 389.2, "A"),
		holding("h06", "ASML", "ASML", "Technology", "NL", 7.4, 1480000, 71, 6.8, "AAA"),
		holding("h07", "Nestlé", "NESN", "Consumer Staples", "CH", 5.1, 1020000, 63, 45.9, "AA"),
		holding("h08", "Vestas Wind Systems", "VWS", "Industrials", "DK", 4.6, 920000, 80, 21.5, "AA"),
		holding("h09", "Glencore", "GLEN", "Materials", "CH", 2.2, 440000, 29, 611.0, "BB"),
		holding("h10", "Iberdrola", "IBE", "Utilities", "ES", 5.8, 1160000, 77, 152.6, "AA"),
		holding("h11", "Novo Nordisk", "NOVO-B", "Health Care", "DK", 8.3, 1660000, 74, 9.4, "AA"),
		holding("h12", "ArcelorMittal", "MT", "Materials", "LU", 1.9, 380000, 33, 1290.5, "B"),
	},
	types.DatasetCompanies: {
		company("c01", "Ørsted", "Utilities", "Renewable Electricity", "DK", "AAA", 82, 24.1, "low"),
		company("c02", "Microsoft", "Technology", "Software", "US", "AAA", 76, 3100, "medium"),
		company("c03", "Shell", "Energy", "Integrated Oil & Gas", "GB", "BBB", 41, 210, "high"),
		company("c04", "Schneider Electric", "Industrials", "Electrical Equipment", "FR", "AA", 79, 128, "low"),
		company("c05", "TotalEnergies", "Energy", "Integrated Oil & Gas", "FR", "A", 45, 152, "high"),
		company("c06", "ASML", "Technology", "Semiconductor Equipment", "NL", "AAA", 71, 280, "low"),
		company("c07", "Nestlé", "Consumer Staples", "Packaged Foods", "CH", "AA", 63, 260, "medium"),
		company("c08", "Glencore", "Materials", "Diversified Mining", "CH", "BB", 29, 62, "severe"),
		company("c09", "Iberdrola", "Utilities", "Electric Utilities", "ES", "AA", 77, 83, "low"),
		company("c10", "ArcelorMittal", "Materials", "Steel", "LU", "B", 33, 22, "medium"),
	},
	types.DatasetReports: {
		report("r01", "CSRD Sustainability Statement", "CSRD", "FY2024", "in_review", 148, 12, "2025-03-14"),
		report("r02", "SFDR Article 8 Periodic Disclosure", "SFDR", "FY2024", "validated", 36, 0, "2025-02-27"),
		report("r03", "TCFD Climate Risk Report", "TCFD", "FY2024", "published", 64, 0, "2025-01-30"),
		report("r04", "Principal Adverse Impact Statement", "SFDR", "FY2024", "draft", 22, 7, "2025-03-18"),
		report("r05", "GRI Content Index", "GRI", "FY2024", "draft", 18, 3, "2025-03-02"),
		report("r06", "EU Taxonomy Alignment", "EU Taxonomy", "FY2024", "in_review", 41, 5, "2025-03-10"),
		report("r07", "TCFD Climate Risk Report", "TCFD", "FY2023", "published", 58, 0, "2024-02-12"),
		report("r08", "Stewardship Report", "UK Stewardship Code", "FY2023", "published", 72, 0, "2024-04-29"),
	},
}

// Seed creates each standard dataset that does not exist yet and fills it
// with the dashboard's sample records. Returns the names it created.
func (b *Backend) Seed() ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	var created []string
	for _, name := range types.StandardDatasetNames {
		if _, ok := b.datasets[name]; ok {
			continue
		}
		if err := b.seedDatasetLocked(name, seedData[name]); err != nil {
			return created, err
		}
		created = append(created, name)
		b.logger.Info("seeded dataset", zap.String("dataset", name), zap.Int("records", len(seedData[name])))
	}
	return created, nil
}

// seedDatasetLocked creates a dataset and inserts records in one
// transaction. The caller must hold b.mu.
func (b *Backend) seedDatasetLocked(name string, records []types.Record) error {
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	raw := make([]json.RawMessage, 0, len(records))
	for _, rec := range records {
		body, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encoding %s seed: %w", name, err)
		}
		raw = append(raw, body)
	}

	if _, err := tx.Exec("INSERT INTO datasets (name, created_at) VALUES (?, datetime('now'))", name); err != nil {
		return fmt.Errorf("registering dataset %s: %w", name, err)
	}
	if _, _, err := insertRecords(tx, name, raw); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed of %s: %w", name, err)
	}

	ds := newDataset(b, name)
	if err := ds.persistLocked(); err != nil {
		return err
	}
	b.datasets[name] = ds
	return nil
}
