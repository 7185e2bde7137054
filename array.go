package tagscan

// Array is a slice of records that implements the Reader and Writer
// interfaces.
type Array struct {
	records []Record
}

var _ Reader = (*Array)(nil)
var _ Writer = (*Array)(nil)

func NewArray(records []Record) *Array {
	return &Array{records: records}
}

func (a *Array) Values() []Record {
	return a.records
}

func (a *Array) Append(rec Record) {
	a.records = append(a.records, rec)
}

func (a *Array) Write(rec Record) error {
	a.Append(rec)
	return nil
}

// Read removes the first record of the Array and returns it, or it returns
// nil if the Array is empty.
func (a *Array) Read() (*Record, error) {
	var rec *Record
	if len(a.records) > 0 {
		rec = &a.records[0]
		a.records = a.records[1:]
	}
	return rec, nil
}
