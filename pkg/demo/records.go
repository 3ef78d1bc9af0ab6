package demo

import (
	"fmt"

	"github.com/amirkhaki/gruvcrisp/pkg/records"
	"go.uber.org/zap"
)

// maxAttempts bounds the retry loop in Records.
const maxAttempts = 3

// Records prints a nested record, walks a tagged union through three
// variants, dispatches on a status code, picks a maximum and runs a bounded
// retry loop.
func (r *Runner) Records() error {
	person := records.Person{
		Name:   "John Doe",
		Age:    30,
		Salary: 75000.50,
		Address: records.Address{
			Street: "123 Main St",
			City:   "Anytown",
			Zip:    "12345",
		},
	}

	fmt.Fprintln(r.out, "\nPerson Info:")
	fmt.Fprintf(r.out, "  Name: %s\n", person.Name)
	fmt.Fprintf(r.out, "  Age: %d\n", person.Age)
	fmt.Fprintf(r.out, "  Salary: $%.2f\n", person.Salary)
	fmt.Fprintf(r.out, "  Address: %s, %s %s\n",
		person.Address.Street, person.Address.City, person.Address.Zip)

	var slot records.Slot
	slot.Set(records.IntData(1234))
	if v, ok := slot.Int(); ok {
		fmt.Fprintf(r.out, "\nUnion as int: %d\n", v)
	}
	slot.Set(records.FloatData(3.14159))
	if v, ok := slot.Float(); ok {
		fmt.Fprintf(r.out, "Union as float: %f\n", v)
	}
	slot.Set(records.ColorData{R: 255, G: 128, B: 64, A: 255})
	if c, ok := slot.Color(); ok {
		fmt.Fprintf(r.out, "Union as color: RGBA(%d, %d, %d, %d)\n", c.R, c.G, c.B, c.A)
	}

	r.reportStatus(records.StatusOK)

	x, y := 42, 17
	fmt.Fprintf(r.out, "\nMaximum of %d and %d is %d\n", x, y, max(x, y))

	r.retry()
	return nil
}

func (r *Runner) reportStatus(status records.Status) {
	switch status {
	case records.StatusOK:
		fmt.Fprintln(r.out, "\nOperation completed successfully")
	case records.StatusError:
		fmt.Fprintln(r.err, "An error occurred")
	case records.StatusInvalidParam:
		fmt.Fprintln(r.err, "Invalid parameter")
	default:
		fmt.Fprintf(r.err, "Unknown status: %d\n", int(status))
	}
}

// retry emits one debug entry per attempt below maxAttempts and returns the
// number of attempts made.
func (r *Runner) retry() int {
	counter := 1
	for ; counter < maxAttempts; counter++ {
		r.log.Debug("retry", zap.Int("attempt", counter))
	}
	return counter
}
