package company

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Company is a venue operating one or more padel courts. Immutable in this
// service; rows are seeded out of band.
type Company struct {
	ID           uuid.UUID
	Name         string
	Address      string
	OpeningHour  time.Duration
	ClosingHour  time.Duration
}

// Court belongs to exactly one company.
type Court struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	Surface   string
	Indoor    bool
}

var postalCodeToken = regexp.MustCompile(`\b([0-9]{5})\b`)

// PostalCode extracts the five-digit postal code embedded in the address,
// used for the nearby-companies ordering. Returns false when none is found.
func (c Company) PostalCode() (int32, bool) {
	for _, field := range strings.Fields(c.Address) {
		if m := postalCodeToken.FindString(strings.Trim(field, ".,;")); m != "" {
			code, err := strconv.Atoi(m)
			if err != nil {
				continue
			}
			return int32(code), true
		}
	}
	return 0, false
}

// Distance is the postal-code delta the source system sorts by. It is not a
// geographic distance.
func (c Company) Distance(userPostalCode int32) (int32, bool) {
	cp, ok := c.PostalCode()
	if !ok {
		return 0, false
	}
	d := cp - userPostalCode
	if d < 0 {
		d = -d
	}
	return d, true
}
