package registration

// Status is the registration lifecycle flag. The engine creates registrations
// as Pending; check-in/check-out transitions are driven by front-desk
// collaborators, not by the submission engine.
type Status string

const (
	StatusPending Status = "Pending"
	StatusActive  Status = "Active"
	StatusClosed  Status = "Closed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusClosed:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}
