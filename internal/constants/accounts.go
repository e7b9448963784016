package constants

const (
	AccountTypeSavings = "SAVINGS"
	AccountTypeCurrent = "CURRENT"
)

const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
	GenderOther  = "OTHER"
)

const (
	// AccountNoBase is added to the primary key to build the public account number.
	AccountNoBase = 100000
	MaxOwnerLen   = 100
	CentsPerUnit  = 100
)

var AccountTypes = map[string]bool{
	AccountTypeSavings: true,
	AccountTypeCurrent: true,
}

var Genders = map[string]bool{
	GenderMale:   true,
	GenderFemale: true,
	GenderOther:  true,
}
