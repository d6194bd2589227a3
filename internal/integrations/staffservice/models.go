package staffservice

// Doctor is the staff directory's projection of a clinic doctor.
// OnDuty is owned by the staff directory; this service only reads it when
// deciding whether a doctor is assignable.
type Doctor struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	OnDuty bool   `json:"on_duty"`
}
