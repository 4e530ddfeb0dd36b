package models

import (
	"time"
)

// Lookup is a code/name pair used for statuses and categories.
// The backend owns the value set; the client only reads it.
type Lookup struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// User is the backend's user projection. Read-only on the client.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// FullName returns "First Last", degrading to whichever part is present.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// Tool is a rentable tool listing.
type Tool struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	RentalPrice  float64  `json:"rentalPrice"`
	DepositPrice float64  `json:"depositPrice"`
	Category     *Lookup  `json:"category,omitempty"`
	Status       *Lookup  `json:"status,omitempty"`
	ImageURLs    []string `json:"imageUrls,omitempty"`
	Owner        *User    `json:"user,omitempty"`
}

// CoverImage returns the first image URL or "" when the tool has none.
func (t Tool) CoverImage() string {
	if len(t.ImageURLs) == 0 {
		return ""
	}
	return t.ImageURLs[0]
}

// UploadToolPayload creates a new tool listing.
type UploadToolPayload struct {
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	RentalPrice    float64  `json:"rentalPrice,omitempty"`
	DepositPrice   float64  `json:"depositPrice,omitempty"`
	LookupStatus   string   `json:"lookupStatus,omitempty"`
	LookupCategory string   `json:"lookupCategory"`
	Images         []string `json:"images,omitempty"`
}

// Conversation ties a renter and a lender together around one tool.
// Immutable after creation from the client's perspective.
type Conversation struct {
	ID     int64 `json:"id"`
	Tool   Tool  `json:"tool"`
	Renter User  `json:"renter"`
	Lender User  `json:"lender"`
}

// Message is one message inside a conversation. Messages are ordered by
// SentAt ascending within a conversation; the server determines the order
// and the client trusts it as fetched.
type Message struct {
	SentAt         time.Time `json:"sentAt"`
	SentBy         User      `json:"sentBy"`
	Text           string    `json:"text"`
	SeenByReceiver bool      `json:"seenByReceiver"`
}

// ReservationStatusFinished is the sole status code that opens a
// reservation for rating.
const ReservationStatusFinished = "FINISHED"

// Reservation is a time-bounded rental of a tool. It carries two
// independent rating slots, named after the rater: OwnerScore/OwnerComment
// is the rating the owner gave the borrower, BorrowerScore/BorrowerComment
// the rating the borrower gave the owner.
type Reservation struct {
	ID              int64     `json:"id"`
	Tool            Tool      `json:"tool"`
	DateFrom        time.Time `json:"dateFrom"`
	DateTo          time.Time `json:"dateTo"`
	Status          Lookup    `json:"status"`
	OwnerScore      *int      `json:"ownerScore"`
	OwnerComment    *string   `json:"ownerComment"`
	BorrowerScore   *int      `json:"borrowerScore"`
	BorrowerComment *string   `json:"borrowerComment"`
	Borrower        User      `json:"borrower"`
}

// Finished reports whether the reservation has run to completion.
func (r Reservation) Finished() bool {
	return r.Status.Code == ReservationStatusFinished
}

// CreateReservationPayload reserves a tool for an inclusive date range.
type CreateReservationPayload struct {
	ToolID         int64     `json:"toolId"`
	DateFrom       time.Time `json:"dateFrom"`
	DateTo         time.Time `json:"dateTo"`
	BorrowerUserID int64     `json:"borrowerUserId"`
}

// RaterRole identifies who is writing a review on a reservation. The role
// is always explicit in submissions; it is never inferred from which score
// field happens to be set.
type RaterRole string

const (
	// RaterOwner is the tool owner rating the borrower.
	RaterOwner RaterRole = "OWNER"
	// RaterBorrower is the borrower rating the tool owner.
	RaterBorrower RaterRole = "BORROWER"
)

// ReviewSubmission is one rating written onto a reservation slot.
type ReviewSubmission struct {
	RaterRole RaterRole `json:"raterRole"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
}

// ReviewEntry is one historical rating in a user's statistics.
type ReviewEntry struct {
	Score   int    `json:"score"`
	Comment string `json:"comment,omitempty"`
}

// ReviewStatistics aggregates a user's rating history across both roles.
type ReviewStatistics struct {
	AsOwner       []ReviewEntry `json:"asOwner"`
	AsBorrower    []ReviewEntry `json:"asBorrower"`
	AverageRating float64       `json:"averageRating"`
}

// NotificationTypeConversation marks notifications whose reference points
// at a conversation.
const NotificationTypeConversation = "CONVERSATION"

// NotificationEvent is one raw notification as delivered by the backend.
type NotificationEvent struct {
	ID           int64     `json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	Message      string    `json:"message"`
	Reference    string    `json:"reference"`
	Acknowledged bool      `json:"acknowledged"`
	Type         string    `json:"type"`
}

// RegisterPayload creates a new user account.
type RegisterPayload struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phoneNumber"`
	PostalCode    string `json:"postalCode"`
	City          string `json:"city"`
	StreetAddress string `json:"streetAddress"`
	Password      string `json:"password"`
}
