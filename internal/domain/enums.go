package domain

// CotyledonType is the number of seed leaves of a plant.
type CotyledonType string

const (
	CotyledonMono CotyledonType = "MONO"
	CotyledonDi   CotyledonType = "DI"
)

func (c CotyledonType) String() string { return string(c) }

func (c CotyledonType) IsValid() bool {
	switch c {
	case CotyledonMono, CotyledonDi:
		return true
	}
	return false
}

// FlowerType decides which flower-part records a plant may own.
type FlowerType string

const (
	// FlowerTypeBoth: separate male and female flowers.
	FlowerTypeBoth FlowerType = "BOTH"
	// FlowerTypeHermaphrodite: one flower carrying stamens and carpels.
	FlowerTypeHermaphrodite FlowerType = "HERMAPHRODITE"
)

func (f FlowerType) String() string { return string(f) }

func (f FlowerType) IsValid() bool {
	switch f {
	case FlowerTypeBoth, FlowerTypeHermaphrodite:
		return true
	}
	return false
}

// Allows reports whether a plant of this flower type may own a flower part
// of the given kind.
func (f FlowerType) Allows(kind FlowerPartKind) bool {
	switch f {
	case FlowerTypeBoth:
		return kind == FlowerPartMale || kind == FlowerPartFemale
	case FlowerTypeHermaphrodite:
		return kind == FlowerPartHermaphrodite
	}
	return false
}

// Arrangement describes how a count of sepals or petals is expressed.
type Arrangement string

const (
	ArrangementNone       Arrangement = "NONE"
	ArrangementRange      Arrangement = "RANGE"
	ArrangementIndefinite Arrangement = "INDEFINITE"
)

func (a Arrangement) String() string { return string(a) }

func (a Arrangement) IsValid() bool {
	switch a {
	case ArrangementNone, ArrangementRange, ArrangementIndefinite:
		return true
	}
	return false
}

// FlowerPartKind names one of the three flower-part entities.
type FlowerPartKind string

const (
	FlowerPartMale          FlowerPartKind = "male_flower"
	FlowerPartFemale        FlowerPartKind = "female_flower"
	FlowerPartHermaphrodite FlowerPartKind = "hermaphrodite_flower"
)

func (k FlowerPartKind) String() string { return string(k) }

func (k FlowerPartKind) IsValid() bool {
	switch k {
	case FlowerPartMale, FlowerPartFemale, FlowerPartHermaphrodite:
		return true
	}
	return false
}

// SubmissionStatus is the moderation state of a PlantSubmission.
// Pending is initial; approved and rejected are terminal.
type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

func (s SubmissionStatus) String() string { return string(s) }

func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionPending, SubmissionApproved, SubmissionRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s SubmissionStatus) IsTerminal() bool {
	switch s {
	case SubmissionPending:
		return false
	case SubmissionApproved, SubmissionRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is a legal
// moderation step.
func (s SubmissionStatus) CanTransitionTo(next SubmissionStatus) bool {
	switch s {
	case SubmissionPending:
		switch next {
		case SubmissionApproved, SubmissionRejected:
			return true
		case SubmissionPending:
			return false
		}
	case SubmissionApproved, SubmissionRejected:
		return false
	}
	return false
}

// UserRole represents the authorization role of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

// IsAdmin returns true if the role has administrative privileges.
func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }
