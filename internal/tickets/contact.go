package tickets

import (
	"fmt"
	"net/url"
	"strings"
)

// Contact holds the links that open a message to the ticket's client.
type Contact struct {
	WhatsApp string `json:"whatsapp"`
	SMS      string `json:"sms"`
}

// ContactFor builds the client links of a ticket. It returns nil when the
// phone has no digits.
func ContactFor(phone, code string) *Contact {
	digits := PhoneDigits(phone)
	if digits == "" {
		return nil
	}
	return &Contact{
		WhatsApp: WhatsAppLink(phone, fmt.Sprintf("Bonjour, concernant votre ticket %s...", code)),
		SMS:      SMSLink(phone, fmt.Sprintf("Klikphone: Votre ticket %s...", code)),
	}
}

// PhoneDigits strips everything but digits.
func PhoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WhatsAppLink targets wa.me, which wants an international number: a
// national leading 0 becomes the French 33 prefix.
func WhatsAppLink(phone, msg string) string {
	t := PhoneDigits(phone)
	if strings.HasPrefix(t, "0") {
		t = "33" + t[1:]
	}
	return "https://wa.me/" + t + "?text=" + escape(msg)
}

func SMSLink(phone, msg string) string {
	return "sms:" + PhoneDigits(phone) + "?body=" + escape(msg)
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
