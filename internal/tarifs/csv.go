package tarifs

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/klikphone/sav-portal/internal/models"
)

// ParseCSV reads a supplier price list with a header row. Columns may use
// the backend's French names or English ones. A missing client price is
// computed from the supplier price. Bad rows are reported and skipped.
func ParseCSV(r io.Reader) ([]models.TarifImportItem, []string) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	headers, err := reader.Read()
	if err != nil {
		return nil, []string{"failed to read header"}
	}
	if len(headers) == 1 && strings.Contains(headers[0], ";") {
		return nil, []string{"expected comma separated columns"}
	}
	index := headerIndex(headers)

	var errs []string
	var out []models.TarifImportItem
	line := 1
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			errs = append(errs, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		item := models.TarifImportItem{
			Marque:         getFieldAny(rec, index, "marque", "brand"),
			Modele:         getFieldAny(rec, index, "modele", "modèle", "model"),
			TypePiece:      getFieldAny(rec, index, "type_piece", "type piece", "part_category", "part"),
			Qualite:        getFieldAny(rec, index, "qualite", "qualité", "quality"),
			NomFournisseur: getFieldAny(rec, index, "nom_fournisseur", "supplier_name", "designation"),
			Categorie:      getFieldAny(rec, index, "categorie", "tier"),
			Source:         getFieldAny(rec, index, "source"),
		}
		if item.Marque == "" || item.Modele == "" || item.TypePiece == "" {
			errs = append(errs, fmt.Sprintf("line %d: brand, model and part are required", line))
			continue
		}
		ht, ok := ParseAmount(getFieldAny(rec, index, "prix_fournisseur_ht", "supplier_price_excl_tax", "prix_ht"))
		if !ok || ht < 0 {
			errs = append(errs, fmt.Sprintf("line %d: invalid supplier price", line))
			continue
		}
		item.PrixFournisseurHT = ht
		if item.Categorie == "" {
			item.Categorie = TierStandard
		}
		if item.Source == "" {
			item.Source = "import"
		}
		if p, ok := ParseAmount(getFieldAny(rec, index, "prix_client", "client_price")); ok && p >= 0 {
			item.PrixClient = int(math.Round(p))
		} else {
			item.PrixClient = ClientPrice(ht, item.TypePiece, item.Categorie)
		}
		out = append(out, item)
	}
	return out, errs
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}
	return index
}

func getFieldAny(rec []string, index map[string]int, keys ...string) string {
	for _, k := range keys {
		if i, ok := index[k]; ok && i < len(rec) {
			if v := strings.TrimSpace(rec[i]); v != "" {
				return v
			}
		}
	}
	return ""
}
