package nav

import (
	"testing"

	"github.com/klikphone/sav-portal/internal/session"
)

func TestItems(t *testing.T) {
	fd := Items(session.RoleFrontDesk)
	if len(fd) != 5 || fd[0].Path != "/accueil" || fd[4].Label != "Config" {
		t.Fatalf("unexpected front-desk items %+v", fd)
	}
	tech := Items(session.RoleTechnician)
	if len(tech) != 2 || tech[1].Path != "/tech/tarifs" {
		t.Fatalf("unexpected technician items %+v", tech)
	}
	if Items("admin") != nil {
		t.Fatalf("unknown role has no items")
	}

	fd[0].Label = "changed"
	if Items(session.RoleFrontDesk)[0].Label != "Dashboard" {
		t.Fatalf("Items must return a copy")
	}
}

func TestHome(t *testing.T) {
	if Home(session.RoleFrontDesk) != "/accueil" || Home(session.RoleTechnician) != "/tech" || Home("") != "/" {
		t.Fatalf("unexpected home paths")
	}
}
