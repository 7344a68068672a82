// Package registration contains the visitor registration aggregate and the
// dedup/cooldown records contended by concurrent submissions.
package registration

import (
	"fmt"
	"time"
)

// MaxStayDays caps how far the departure date may extend past the arrival.
const MaxStayDays = 3

// Registration is one visitor/contractor registration event. Created exactly
// once by the submit coordinator; the parking lot field is set by the
// allocation transaction.
type Registration struct {
	id           string
	hostUnit     string
	hostName     string
	hostPhone    string
	category     string
	subCategory  string
	companyName  string
	visitorName  string
	visitorPhone string
	vehicleNo    string
	stayOver     bool
	eta          time.Time
	etd          *time.Time
	status       Status
	parkingLot   string
	assignedBy   string
	assignedAt   *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

// NewRegistration validates and builds a pending registration. The host unit
// is normalized; at least one visitor identity (phone or name) is required so
// the submission can be fingerprinted.
func NewRegistration(
	hostUnit string,
	hostName string,
	visitorName string,
	visitorPhone string,
	eta time.Time,
	etd *time.Time,
) (*Registration, error) {
	unit := NormalizeUnitID(hostUnit)
	if unit == "" {
		return nil, fmt.Errorf("host unit is required")
	}
	if eta.IsZero() {
		return nil, fmt.Errorf("eta is required")
	}
	if visitorName == "" && NormalizePhone(visitorPhone) == "" {
		return nil, fmt.Errorf("visitor name or phone is required")
	}
	if etd != nil {
		if etd.Before(eta) {
			return nil, fmt.Errorf("etd must not be before eta")
		}
		if etd.Sub(eta) > MaxStayDays*24*time.Hour {
			return nil, fmt.Errorf("etd must be within %d days of eta", MaxStayDays)
		}
	}

	now := time.Now().UTC()
	return &Registration{
		hostUnit:     unit,
		hostName:     hostName,
		visitorName:  visitorName,
		visitorPhone: visitorPhone,
		eta:          eta,
		etd:          etd,
		status:       StatusPending,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructRegistration rebuilds a registration from persistence.
func ReconstructRegistration(
	id string,
	hostUnit string,
	hostName string,
	hostPhone string,
	category string,
	subCategory string,
	companyName string,
	visitorName string,
	visitorPhone string,
	vehicleNo string,
	stayOver bool,
	eta time.Time,
	etd *time.Time,
	status Status,
	parkingLot string,
	assignedBy string,
	assignedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Registration, error) {
	if id == "" {
		return nil, fmt.Errorf("registration ID cannot be empty")
	}
	if hostUnit == "" {
		return nil, fmt.Errorf("host unit is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Registration{
		id:           id,
		hostUnit:     hostUnit,
		hostName:     hostName,
		hostPhone:    hostPhone,
		category:     category,
		subCategory:  subCategory,
		companyName:  companyName,
		visitorName:  visitorName,
		visitorPhone: visitorPhone,
		vehicleNo:    vehicleNo,
		stayOver:     stayOver,
		eta:          eta,
		etd:          etd,
		status:       status,
		parkingLot:   parkingLot,
		assignedBy:   assignedBy,
		assignedAt:   assignedAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (r *Registration) ID() string           { return r.id }
func (r *Registration) HostUnit() string     { return r.hostUnit }
func (r *Registration) HostName() string     { return r.hostName }
func (r *Registration) HostPhone() string    { return r.hostPhone }
func (r *Registration) Category() string     { return r.category }
func (r *Registration) SubCategory() string  { return r.subCategory }
func (r *Registration) CompanyName() string  { return r.companyName }
func (r *Registration) VisitorName() string  { return r.visitorName }
func (r *Registration) VisitorPhone() string { return r.visitorPhone }
func (r *Registration) VehicleNo() string    { return r.vehicleNo }
func (r *Registration) StayOver() bool       { return r.stayOver }
func (r *Registration) ETA() time.Time       { return r.eta }
func (r *Registration) ETD() *time.Time      { return r.etd }
func (r *Registration) Status() Status       { return r.status }
func (r *Registration) ParkingLot() string   { return r.parkingLot }
func (r *Registration) AssignedBy() string   { return r.assignedBy }
func (r *Registration) AssignedAt() *time.Time {
	return r.assignedAt
}
func (r *Registration) CreatedAt() time.Time { return r.createdAt }
func (r *Registration) UpdatedAt() time.Time { return r.updatedAt }

// SetID assigns the identifier exactly once, before first persistence.
func (r *Registration) SetID(id string) error {
	if r.id != "" {
		return fmt.Errorf("registration ID is already set")
	}
	if id == "" {
		return fmt.Errorf("registration ID cannot be empty")
	}
	r.id = id
	return nil
}

// SetVisitorDetails fills the optional front-desk fields collected by the
// registration form.
func (r *Registration) SetVisitorDetails(hostPhone, category, subCategory, companyName, vehicleNo string, stayOver bool) {
	r.hostPhone = hostPhone
	r.category = category
	r.subCategory = subCategory
	r.companyName = companyName
	r.vehicleNo = vehicleNo
	r.stayOver = stayOver
	r.updatedAt = time.Now().UTC()
}

// Fingerprint derives the dedup key for this registration.
func (r *Registration) Fingerprint() (string, error) {
	return ComputeFingerprint(r.eta, r.hostUnit, r.visitorPhone, r.visitorName)
}

// AssignLot records the parking lot allocation. Re-assigning the same lot is
// an idempotent refresh of the assignment metadata; switching to a different
// lot overwrites the previous one (the conflict check against other
// registrations happens in the allocation transaction, not here).
func (r *Registration) AssignLot(lotID, assignedBy string) error {
	if lotID == "" {
		return fmt.Errorf("lot ID cannot be empty")
	}
	now := time.Now().UTC()
	r.parkingLot = lotID
	r.assignedBy = assignedBy
	r.assignedAt = &now
	r.updatedAt = now
	return nil
}

// ChangeStatus applies a front-desk lifecycle transition.
func (r *Registration) ChangeStatus(next Status) error {
	if !next.IsValid() {
		return fmt.Errorf("invalid status: %s", next)
	}
	if r.status == next {
		return nil
	}
	r.status = next
	r.updatedAt = time.Now().UTC()
	return nil
}
