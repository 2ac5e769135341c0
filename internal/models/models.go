package models

import "time"

// User roles.
const (
	RoleDealer   = "property_dealer"
	RoleCustomer = "customer"
)

// Property status values.
const (
	StatusAvailable = "available"
	StatusPending   = "pending"
	StatusSold      = "sold"
)

type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"` // plaintext demo credentials, never hashed
	Role     string `json:"role"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

// Features is the fixed 13-covariate record of the Boston housing dataset.
type Features struct {
	CRIM    float64 `json:"CRIM"`
	ZN      float64 `json:"ZN"`
	INDUS   float64 `json:"INDUS"`
	CHAS    float64 `json:"CHAS"`
	NOX     float64 `json:"NOX"`
	RM      float64 `json:"RM"`
	AGE     float64 `json:"AGE"`
	DIS     float64 `json:"DIS"`
	RAD     float64 `json:"RAD"`
	TAX     float64 `json:"TAX"`
	PTRATIO float64 `json:"PTRATIO"`
	B       float64 `json:"B"`
	LSTAT   float64 `json:"LSTAT"`
}

// Value returns the covariate named by code, or 0 for an unknown code.
func (f Features) Value(code string) float64 {
	switch code {
	case "CRIM":
		return f.CRIM
	case "ZN":
		return f.ZN
	case "INDUS":
		return f.INDUS
	case "CHAS":
		return f.CHAS
	case "NOX":
		return f.NOX
	case "RM":
		return f.RM
	case "AGE":
		return f.AGE
	case "DIS":
		return f.DIS
	case "RAD":
		return f.RAD
	case "TAX":
		return f.TAX
	case "PTRATIO":
		return f.PTRATIO
	case "B":
		return f.B
	case "LSTAT":
		return f.LSTAT
	default:
		return 0
	}
}

// Set assigns the covariate named by code, ignoring unknown codes.
func (f *Features) Set(code string, value float64) {
	switch code {
	case "CRIM":
		f.CRIM = value
	case "ZN":
		f.ZN = value
	case "INDUS":
		f.INDUS = value
	case "CHAS":
		f.CHAS = value
	case "NOX":
		f.NOX = value
	case "RM":
		f.RM = value
	case "AGE":
		f.AGE = value
	case "DIS":
		f.DIS = value
	case "RAD":
		f.RAD = value
	case "TAX":
		f.TAX = value
	case "PTRATIO":
		f.PTRATIO = value
	case "B":
		f.B = value
	case "LSTAT":
		f.LSTAT = value
	}
}

type Property struct {
	ID           int      `json:"id"`
	Address      string   `json:"address"`
	Neighborhood string   `json:"neighborhood"`
	Price        int      `json:"price"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	Sqft         int      `json:"sqft"`
	PropertyType string   `json:"property_type"`
	ListingType  string   `json:"listing_type"`
	DealerID     int      `json:"dealer_id"`
	Status       string   `json:"status"`
	Features     Features `json:"features"`
}

// Favorite marks a property saved by a user. Existence of the pair is the
// whole state; at most one Favorite exists per (UserID, PropertyID).
type Favorite struct {
	UserID     int `json:"user_id"`
	PropertyID int `json:"property_id"`
}

// Prediction is one entry of the append-only prediction log.
type Prediction struct {
	ID         string    `json:"id"`
	UserID     int       `json:"user_id"`
	Features   Features  `json:"features"`
	Prediction float64   `json:"prediction"`
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
}

type Neighborhood struct {
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Properties int     `json:"properties"`
}

// Chat transcript speakers.
const (
	SpeakerUser = "user"
	SpeakerBot  = "bot"
)

type ChatMessage struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}
