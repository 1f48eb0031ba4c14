package models

// Counselor offers bookable time slots. AvailableSlots is an ordered
// sequence of slot labels; booking a slot removes it from the sequence.
type Counselor struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Specialty      string   `json:"specialty"`
	Avatar         string   `json:"avatar"`
	AvailableSlots []string `json:"availableSlots"`
}

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment is created by booking a counselor slot.
type Appointment struct {
	ID          string            `json:"id"`
	CounselorID string            `json:"counselorId"`
	StudentID   string            `json:"studentId"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	MeetLink    string            `json:"meetLink"`
	Status      AppointmentStatus `json:"status"`
}
