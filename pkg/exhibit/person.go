package exhibit

import (
	"math"
	"strings"
	"time"
)

// timeNow supplies the wall clock for age computation. Overridable in
// tests and by SetReferenceYear.
var timeNow = time.Now

// currentYear returns the year used for age derivation.
func currentYear() int {
	return timeNow().Year()
}

// SetReferenceYear fixes the year used for age computation, for
// deterministic demos. Passing 0 restores the wall clock.
func SetReferenceYear(year int) {
	if year == 0 {
		timeNow = time.Now
		return
	}
	fixed := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixed }
}

// Person is a name, birth-year, and compensation record. The zero value
// has no name, birth year, salary, or bonus set. All setters validate
// before committing; a failed setter leaves the record untouched.
type Person struct {
	firstName string
	lastName  string

	birthYear    int
	birthYearSet bool

	baseSalary    int64
	baseSalarySet bool

	bonus    float64
	bonusSet bool
}

// NewPerson creates a Person with the given names. Either name may be
// empty; SetFullName can populate both later.
func NewPerson(firstName, lastName string) *Person {
	return &Person{firstName: firstName, lastName: lastName}
}

// FirstName returns the first name.
func (p *Person) FirstName() string { return p.firstName }

// LastName returns the last name.
func (p *Person) LastName() string { return p.lastName }

// FullName returns "first last", trimmed when either part is empty.
func (p *Person) FullName() string {
	return strings.TrimSpace(p.firstName + " " + p.lastName)
}

// SetFullName splits name on whitespace and assigns the first token as
// the first name and the remaining tokens, joined by single spaces, as
// the last name. Returns ErrNameMalformed if fewer than two tokens are
// present. Runs of whitespace in the input collapse to single spaces, so
// setting and reading FullName round-trips up to spacing.
func (p *Person) SetFullName(name string) error {
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return ErrNameMalformed
	}
	p.firstName = parts[0]
	p.lastName = strings.Join(parts[1:], " ")
	return nil
}

// SetBirthYear sets the year of birth.
// Returns ErrBirthYearInvalid if year is not positive.
func (p *Person) SetBirthYear(year int) error {
	if year <= 0 {
		return ErrBirthYearInvalid
	}
	p.birthYear = year
	p.birthYearSet = true
	return nil
}

// Age returns the age derived from the current year and the birth year.
// The second return is false while the birth year is unset.
func (p *Person) Age() (int, bool) {
	if !p.birthYearSet {
		return 0, false
	}
	return currentYear() - p.birthYear, true
}

// Bonus returns the bonus percentage. The second return is false while
// the bonus is unset.
func (p *Person) Bonus() (float64, bool) {
	if !p.bonusSet {
		return 0, false
	}
	return p.bonus, true
}

// SetBonus sets the bonus percentage.
// Returns ErrBonusNotNumeric for NaN or infinite input and ErrBonusRange
// for values outside [0, 100].
func (p *Person) SetBonus(bonus float64) error {
	if err := validateBonus(bonus); err != nil {
		return err
	}
	p.bonus = bonus
	p.bonusSet = true
	return nil
}

// BaseSalary returns the base salary. The second return is false while
// the salary is unset.
func (p *Person) BaseSalary() (int64, bool) {
	if !p.baseSalarySet {
		return 0, false
	}
	return p.baseSalary, true
}

// SetSalary sets the base salary and bonus percentage as a pair. All
// validation happens before either field mutates, so a rejected call
// leaves any previously set pair intact.
// Returns ErrSalaryNegative, ErrBonusNotNumeric, or ErrBonusRange.
func (p *Person) SetSalary(baseSalary int64, bonus float64) error {
	if baseSalary < 0 {
		return ErrSalaryNegative
	}
	if err := validateBonus(bonus); err != nil {
		return err
	}
	p.baseSalary = baseSalary
	p.baseSalarySet = true
	p.bonus = bonus
	p.bonusSet = true
	return nil
}

// TotalCompensation returns base + base*bonus/100, or 0 while either
// the base salary or the bonus is unset.
func (p *Person) TotalCompensation() float64 {
	if !p.baseSalarySet || !p.bonusSet {
		return 0
	}
	base := float64(p.baseSalary)
	return base + base*(p.bonus/100)
}

// validateBonus checks that bonus is finite and within [0, 100].
func validateBonus(bonus float64) error {
	if math.IsNaN(bonus) || math.IsInf(bonus, 0) {
		return ErrBonusNotNumeric
	}
	if bonus < 0 || bonus > 100 {
		return ErrBonusRange
	}
	return nil
}
