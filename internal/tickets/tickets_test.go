package tickets

import (
	"testing"

	"github.com/klikphone/sav-portal/internal/models"
)

func TestProgressInProgress(t *testing.T) {
	p := ProgressOf("Repair in progress")
	if p.StepIndex != 4 {
		t.Fatalf("expected index 4, got %d", p.StepIndex)
	}
	if len(p.Steps) != 7 {
		t.Fatalf("expected 7 timeline steps, got %d", len(p.Steps))
	}
	for i, s := range p.Steps {
		if s.Done != (i <= 4) {
			t.Fatalf("step %d done=%v", i, s.Done)
		}
		if s.Current != (i == 4) {
			t.Fatalf("step %d current=%v", i, s.Current)
		}
	}
}

func TestProgressClosedAndUnknown(t *testing.T) {
	for _, status := range []string{"Closed", "", "Perdu"} {
		p := ProgressOf(status)
		if p.StepIndex != -1 {
			t.Fatalf("%q: expected -1, got %d", status, p.StepIndex)
		}
		for i, s := range p.Steps {
			if s.Done || s.Current {
				t.Fatalf("%q: step %d should be pending", status, i)
			}
		}
	}
}

func TestProgressReturnsCopies(t *testing.T) {
	a := ProgressOf(StatusAwaitingPart)
	a.Steps[0].Label = "mutated"
	a.Steps[3].Done = true
	b := ProgressOf(StatusAwaitingPart)
	if b.Steps[0].Label != StatusAwaitingDiagnosis || b.Steps[3].Done {
		t.Fatalf("cached progress was mutated through a caller copy")
	}
	if b.StepIndex != 1 {
		t.Fatalf("expected index 1, got %d", b.StepIndex)
	}
}

func TestStatuses(t *testing.T) {
	if len(Statuses) != 8 || len(TimelineStatuses) != 7 {
		t.Fatalf("unexpected status lists")
	}
	if TimelineStatuses[6] != StatusReturned {
		t.Fatalf("timeline must end at %q", StatusReturned)
	}
	if !IsValidStatus(StatusClosed) || IsValidStatus("closed") {
		t.Fatalf("status validity is exact")
	}
}

func TestEditBufferUpdates(t *testing.T) {
	quote := 89.0
	b := NewEditBuffer(models.Ticket{ID: 7, EstimatedQuote: &quote, Technician: "Marina"})
	if b.Get(FieldEstimatedQuote) != "89" {
		t.Fatalf("unexpected quote %q", b.Get(FieldEstimatedQuote))
	}
	if err := b.Set(FieldDeposit, "20,5"); err != nil {
		t.Fatalf("set deposit: %v", err)
	}
	if err := b.Set(FieldFinalPrice, "abc"); err != nil {
		t.Fatalf("set final price: %v", err)
	}
	if err := b.Set(FieldInternalNotes, "  "); err != nil {
		t.Fatalf("set notes: %v", err)
	}
	if err := b.Set("status", "Closed"); err == nil {
		t.Fatalf("status must not be editable through the buffer")
	}

	u := b.Updates()
	if u[FieldEstimatedQuote] != 89.0 || u[FieldDeposit] != 20.5 || u[FieldFinalPrice] != 0.0 {
		t.Fatalf("unexpected money coercion %v", u)
	}
	if u[FieldTechnician] != "Marina" {
		t.Fatalf("expected technician, got %v", u[FieldTechnician])
	}
	if _, ok := u[FieldInternalNotes]; ok {
		t.Fatalf("blank values must be omitted")
	}
	if _, ok := u[FieldScreenType]; ok {
		t.Fatalf("empty values must be omitted")
	}
	if len(Fields()) != 8 {
		t.Fatalf("expected 8 editable fields")
	}
}

func TestContactLinks(t *testing.T) {
	cases := []struct {
		phone, whatsapp, sms string
	}{
		{"06 12 34 56 78", "https://wa.me/33612345678?text=hi%20there", "sms:0612345678?body=hi%20there"},
		{"+33 6.12.34.56.78", "https://wa.me/33612345678?text=hi%20there", "sms:33612345678?body=hi%20there"},
		{"(0)7-00", "https://wa.me/33700?text=hi%20there", "sms:0700?body=hi%20there"},
	}
	for _, tc := range cases {
		if got := WhatsAppLink(tc.phone, "hi there"); got != tc.whatsapp {
			t.Fatalf("WhatsAppLink(%q) = %q, want %q", tc.phone, got, tc.whatsapp)
		}
		if got := SMSLink(tc.phone, "hi there"); got != tc.sms {
			t.Fatalf("SMSLink(%q) = %q, want %q", tc.phone, got, tc.sms)
		}
	}

	if ContactFor("", "KP-000001") != nil || ContactFor("n/a", "KP-000001") != nil {
		t.Fatalf("expected no links without a phone number")
	}
	c := ContactFor("0612345678", "KP-000001")
	if c == nil || c.WhatsApp != "https://wa.me/33612345678?text=Bonjour%2C%20concernant%20votre%20ticket%20KP-000001..." {
		t.Fatalf("unexpected contact %+v", c)
	}
	if c.SMS != "sms:0612345678?body=Klikphone%3A%20Votre%20ticket%20KP-000001..." {
		t.Fatalf("unexpected sms link %q", c.SMS)
	}
}
