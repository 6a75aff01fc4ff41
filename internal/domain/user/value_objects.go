package user

import (
	"errors"
	"regexp"
)

var ErrInvalidDNI = errors.New("invalid dni")

// Spanish DNI: eight digits plus a control letter.
var dniPattern = regexp.MustCompile(`^[0-9]{8}[A-Za-z]$`)

// DNI is the stable external identity key for a user.
type DNI struct {
	value string
}

func NewDNI(value string) (DNI, error) {
	if !dniPattern.MatchString(value) {
		return DNI{}, ErrInvalidDNI
	}
	return DNI{value: value}, nil
}

func (d DNI) String() string {
	return d.value
}

func (d DNI) IsEmpty() bool {
	return d.value == ""
}
