package models

type Ticket struct {
	ID               int64    `json:"id"`
	TicketCode       string   `json:"ticket_code"`
	ClientID         int64    `json:"client_id"`
	Category         string   `json:"category"`
	Brand            string   `json:"brand"`
	Model            string   `json:"model"`
	ModelOther       string   `json:"model_other"`
	IMEI             string   `json:"imei"`
	FaultType        string   `json:"fault_type"`
	FaultDetail      string   `json:"fault_detail"`
	UnlockPin        string   `json:"unlock_pin"`
	UnlockPattern    string   `json:"unlock_pattern"`
	Status           string   `json:"status"`
	EstimatedQuote   *float64 `json:"estimated_quote"`
	FinalPrice       *float64 `json:"final_price"`
	Deposit          *float64 `json:"deposit"`
	ExtraRepairLabel string   `json:"extra_repair_label"`
	ExtraRepairPrice *float64 `json:"extra_repair_price"`
	ScreenType       string   `json:"screen_type"`
	ClientNotes      string   `json:"client_notes"`
	InternalNotes    string   `json:"internal_notes"`
	History          string   `json:"history"`
	Technician       string   `json:"assigned_technician"`
	DateCreated      string   `json:"date_created"`
	DateUpdated      string   `json:"date_updated"`
	DateClosed       *string  `json:"date_closed"`

	ClientLastName  string `json:"client_last_name,omitempty"`
	ClientFirstName string `json:"client_first_name,omitempty"`
	ClientPhone     string `json:"client_phone,omitempty"`
	ClientEmail     string `json:"client_email,omitempty"`
}

// TicketCreate is the intake payload for POST /tickets.
type TicketCreate struct {
	ClientID      int64  `json:"client_id"`
	Category      string `json:"category"`
	Brand         string `json:"brand"`
	Model         string `json:"model"`
	ModelOther    string `json:"model_other"`
	IMEI          string `json:"imei"`
	FaultType     string `json:"fault_type"`
	FaultDetail   string `json:"fault_detail"`
	UnlockPin     string `json:"unlock_pin"`
	UnlockPattern string `json:"unlock_pattern"`
	ClientNotes   string `json:"client_notes"`
}

type TicketFilter struct {
	Search string
	Status string
}

type StatusChange struct {
	Status string `json:"status"`
}

type KPI struct {
	AwaitingDiagnosis int `json:"awaiting_diagnosis"`
	InProgress        int `json:"in_progress"`
	AwaitingPart      int `json:"awaiting_part"`
	AwaitingApproval  int `json:"awaiting_approval"`
	RepairComplete    int `json:"repair_complete"`
	TotalActive       int `json:"total_active"`
	ClosedToday       int `json:"closed_today"`
	NewToday          int `json:"new_today"`
}

type Client struct {
	ID          int64  `json:"id"`
	LastName    string `json:"last_name"`
	FirstName   string `json:"first_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	LoyaltyCard int    `json:"loyalty_card"`
	DateCreated string `json:"date_created,omitempty"`
}

type ClientCreate struct {
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

type Part struct {
	ID           int64   `json:"id"`
	TicketID     int64   `json:"ticket_id"`
	Description  string  `json:"description"`
	Supplier     string  `json:"supplier"`
	Reference    string  `json:"reference"`
	Price        float64 `json:"price"`
	Status       string  `json:"status"`
	DateOrdered  *string `json:"date_ordered"`
	DateReceived *string `json:"date_received"`
	Notes        string  `json:"notes"`
}

type Param struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Brand struct {
	ID       int64  `json:"id"`
	Category string `json:"categorie"`
	Brand    string `json:"marque"`
}

type ModelRef struct {
	ID       int64  `json:"id"`
	Category string `json:"categorie"`
	Brand    string `json:"marque"`
	Model    string `json:"modele"`
}

type TeamMember struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Color  string `json:"color"`
	Active int    `json:"active"`
}

type LoginRequest struct {
	Pin      string `json:"pin"`
	Role     string `json:"role"`
	Username string `json:"username"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
	Username    string `json:"username"`
}

type TarifStats struct {
	TotalTarifs  int            `json:"total_tarifs"`
	TotalModeles int            `json:"total_modeles"`
	TotalMarques int            `json:"total_marques"`
	PrixMin      *float64       `json:"prix_min"`
	PrixMax      *float64       `json:"prix_max"`
	LastUpdate   *string        `json:"last_update"`
	ParMarque    map[string]int `json:"par_marque"`
}

type TarifImportItem struct {
	Marque            string  `json:"marque"`
	Modele            string  `json:"modele"`
	TypePiece         string  `json:"type_piece"`
	Qualite           string  `json:"qualite"`
	NomFournisseur    string  `json:"nom_fournisseur"`
	PrixFournisseurHT float64 `json:"prix_fournisseur_ht"`
	PrixClient        int     `json:"prix_client"`
	Categorie         string  `json:"categorie"`
	Source            string  `json:"source"`
}

type TarifImportRequest struct {
	Tarifs []TarifImportItem `json:"tarifs"`
}

type TarifImportResult struct {
	OK       bool `json:"ok"`
	Imported int  `json:"imported"`
}

type TarifClearResult struct {
	OK        bool `json:"ok"`
	Remaining int  `json:"remaining"`
}

type TriggerResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}
