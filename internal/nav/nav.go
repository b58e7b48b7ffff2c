// Package nav maps a staff role to its navigation entries.
package nav

import "github.com/klikphone/sav-portal/internal/session"

type Item struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

var items = map[session.Role][]Item{
	session.RoleFrontDesk: {
		{Label: "Dashboard", Path: "/accueil"},
		{Label: "Clients", Path: "/accueil/clients"},
		{Label: "Parts", Path: "/accueil/pieces"},
		{Label: "Tariffs", Path: "/accueil/tarifs"},
		{Label: "Config", Path: "/accueil/config"},
	},
	session.RoleTechnician: {
		{Label: "My tickets", Path: "/tech"},
		{Label: "Tariffs", Path: "/tech/tarifs"},
	},
}

var homes = map[session.Role]string{
	session.RoleFrontDesk:  "/accueil",
	session.RoleTechnician: "/tech",
}

// Items returns a copy of the entries for role, nil for an unknown role.
func Items(role session.Role) []Item {
	src := items[role]
	if src == nil {
		return nil
	}
	out := make([]Item, len(src))
	copy(out, src)
	return out
}

// Home is the landing path after login. Unknown roles go back to "/".
func Home(role session.Role) string {
	if h, ok := homes[role]; ok {
		return h
	}
	return "/"
}
