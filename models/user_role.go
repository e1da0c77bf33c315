package models

type UserRole string

const (
	StaffRole     UserRole = "STAFF"
	SuperuserRole UserRole = "SUPERUSER"
	RegularRole   UserRole = "REGULAR"
)

const SystemUserName = "system"

var roleHumanName = map[UserRole]string{
	StaffRole:     "Administrator",
	SuperuserRole: "Superuser",
	RegularRole:   "User",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func RoleOf(isStaff, isSuperuser bool) UserRole {
	switch {
	case isSuperuser:
		return SuperuserRole
	case isStaff:
		return StaffRole
	}
	return RegularRole
}

type Sex string

const (
	SexNotGiven Sex = ""
	SexFemale   Sex = "F"
	SexMale     Sex = "M"
	// SexUnknown is accepted on import only and stored as SexNotGiven.
	SexUnknown Sex = "U"
)

var sexHumanName = map[Sex]string{
	SexNotGiven: "prefer not to say",
	SexFemale:   "female",
	SexMale:     "male",
}

func (s Sex) ToHuman() string {
	if human, exist := sexHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s Sex) IsValid() bool {
	_, ok := sexHumanName[s]
	return ok
}

func (s Sex) Normalize() Sex {
	if s == SexUnknown {
		return SexNotGiven
	}
	return s
}
