package tickets

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/klikphone/sav-portal/internal/models"
)

// Editable ticket fields, named as the backend expects them in a PATCH.
const (
	FieldEstimatedQuote   = "estimated_quote"
	FieldFinalPrice       = "final_price"
	FieldDeposit          = "deposit"
	FieldInternalNotes    = "internal_notes"
	FieldTechnician       = "assigned_technician"
	FieldExtraRepairLabel = "extra_repair_label"
	FieldExtraRepairPrice = "extra_repair_price"
	FieldScreenType       = "screen_type"
)

var moneyFields = map[string]bool{
	FieldEstimatedQuote:   true,
	FieldFinalPrice:       true,
	FieldDeposit:          true,
	FieldExtraRepairPrice: true,
}

var textFields = map[string]bool{
	FieldInternalNotes:    true,
	FieldTechnician:       true,
	FieldExtraRepairLabel: true,
	FieldScreenType:       true,
}

// EditBuffer is a staff member's working copy of the editable fields of a
// ticket. It is not safe for concurrent use.
type EditBuffer struct {
	TicketID int64
	values   map[string]string
}

func NewEditBuffer(t models.Ticket) *EditBuffer {
	return &EditBuffer{
		TicketID: t.ID,
		values: map[string]string{
			FieldEstimatedQuote:   money(t.EstimatedQuote),
			FieldFinalPrice:       money(t.FinalPrice),
			FieldDeposit:          money(t.Deposit),
			FieldInternalNotes:    t.InternalNotes,
			FieldTechnician:       t.Technician,
			FieldExtraRepairLabel: t.ExtraRepairLabel,
			FieldExtraRepairPrice: money(t.ExtraRepairPrice),
			FieldScreenType:       t.ScreenType,
		},
	}
}

func money(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func IsEditable(field string) bool {
	return moneyFields[field] || textFields[field]
}

// Set replaces one field. Unknown fields are an error.
func (b *EditBuffer) Set(field, value string) error {
	if !IsEditable(field) {
		return fmt.Errorf("ticket field %q is not editable", field)
	}
	b.values[field] = value
	return nil
}

func (b *EditBuffer) Get(field string) string {
	return b.values[field]
}

// Updates is the partial update to send. Empty values are left out and
// money fields are sent as numbers, 0 when they do not parse.
func (b *EditBuffer) Updates() map[string]any {
	out := make(map[string]any, len(b.values))
	for k, v := range b.values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if moneyFields[k] {
			f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
			if err != nil {
				f = 0
			}
			out[k] = f
			continue
		}
		out[k] = v
	}
	return out
}

// Fields lists the editable field names in a stable order.
func Fields() []string {
	out := make([]string, 0, len(moneyFields)+len(textFields))
	for k := range moneyFields {
		out = append(out, k)
	}
	for k := range textFields {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
