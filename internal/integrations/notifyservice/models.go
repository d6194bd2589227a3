package notifyservice

// EventKind enumerates reservation lifecycle events
type EventKind string

const (
	KindCreated        EventKind = "Created"
	KindDoctorAssigned EventKind = "DoctorAssigned"
	KindApproved       EventKind = "Approved"
	KindRejected       EventKind = "Rejected"
)

// Event is the structured payload handed to the notification service.
// It carries the actual date, time and ids so the consumer can deep-link
// without parsing any human-readable text.
type Event struct {
	Kind          EventKind `json:"kind"`
	ReservationID int64     `json:"reservationId"`
	UserID        int64     `json:"userId"`
	Date          string    `json:"date"`      // YYYY-MM-DD
	StartTime     string    `json:"startTime"` // HH:MM
	PetName       string    `json:"petName"`
	DoctorName    *string   `json:"doctorName,omitempty"`
}
